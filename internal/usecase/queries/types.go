package queries

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityItem is one free (resource, variant, operator) triple.
type AvailabilityItem struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	VariantID    uuid.UUID `json:"variant_id"`
	VariantLabel string    `json:"variant_label"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	OperatorID   string    `json:"operator_id"`
}

type AvailabilityView struct {
	Date  string             `json:"date"`
	Items []AvailabilityItem `json:"items"`
}

// CapabilityView is a variant an operator is certified for, with its resource descriptors.
type CapabilityView struct {
	VariantID    uuid.UUID `json:"variant_id"`
	VariantLabel string    `json:"variant_label"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	DeclaredAt   time.Time `json:"declared_at"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   string    `json:"customer_id"`
	VariantID    uuid.UUID `json:"variant_id"`
	VariantLabel string    `json:"variant_label"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	OperatorID   string    `json:"operator_id"`
	BookingDate  string    `json:"booking_date"`
	CreatedAt    time.Time `json:"created_at"`
}
