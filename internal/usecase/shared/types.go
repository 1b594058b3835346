package shared

import (
	"time"

	"fleet-dispatch/internal/domain/resource"

	"github.com/google/uuid"
)

// VariantSnapshot is a variant joined with its owning resource.
type VariantSnapshot struct {
	Variant  resource.Variant
	Resource resource.Resource
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	CustomerID          string
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

func (r IdempotencyRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

const (
	NotificationKindAMQP      = "amqp"
	TopicReservationCommitted = "reservation.committed"
	NotificationStatusQueued  = "queued"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

// ReservationCommittedEvent is published once per committed reservation.
type ReservationCommittedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CustomerID    string    `json:"customer_id"`
	OperatorID    string    `json:"operator_id"`
	VariantID     uuid.UUID `json:"variant_id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	BookingDate   string    `json:"booking_date"`
	CommittedAt   time.Time `json:"committed_at"`
}
