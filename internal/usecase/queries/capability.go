package queries

import (
	"context"

	"fleet-dispatch/internal/domain/operator"
)

type CapabilityReader interface {
	OperatorExists(ctx context.Context, operatorID string) (bool, error)
	ListByOperator(ctx context.Context, operatorID string) ([]CapabilityView, error)
}

type OperatorCapabilitiesView struct {
	OperatorID string           `json:"operator_id"`
	Variants   []CapabilityView `json:"variants"`
}

type CapabilityQueries interface {
	ListFor(ctx context.Context, operatorID string) (*OperatorCapabilitiesView, error)
}

type capabilityQueriesImpl struct {
	reader CapabilityReader
}

func NewCapabilityQueries(reader CapabilityReader) CapabilityQueries {
	return &capabilityQueriesImpl{reader: reader}
}

func (q *capabilityQueriesImpl) ListFor(ctx context.Context, operatorID string) (*OperatorCapabilitiesView, error) {
	id, err := operator.NormalizeID(operatorID)
	if err != nil {
		return nil, err
	}

	exists, err := q.reader.OperatorExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, operator.ErrOperatorNotFound
	}

	variants, err := q.reader.ListByOperator(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OperatorCapabilitiesView{OperatorID: id, Variants: variants}, nil
}
