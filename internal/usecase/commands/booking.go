package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"fleet-dispatch/internal/domain/assignment"
	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/infra"
	"fleet-dispatch/internal/pkg/clock"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookingEndpoint = "POST /api/bookings"

type BookingInput struct {
	VariantID uuid.UUID
	Date      string
	Mode      string
}

type BookingResult struct {
	Reservation *reservation.Reservation
	Replayed    bool
}

type BookingCommands interface {
	// Book assigns an operator and commits the reservation in one transaction.
	// A non-nil idempotencyKey makes the call replayable for the same customer.
	Book(ctx context.Context, actor auth.Principal, in BookingInput, idempotencyKey *uuid.UUID) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.AvailabilityInvalidator
	clock       clock.Clock
	cfg         config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	invalidator shared.AvailabilityInvalidator,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
		cfg:         cfg.Booking,
	}
}

func (c *bookingCommandsImpl) Book(ctx context.Context, actor auth.Principal, in BookingInput, idempotencyKey *uuid.UUID) (*BookingResult, error) {
	if actor.Role != auth.RoleCustomer {
		return nil, auth.ErrRoleNotAllowed
	}
	if in.VariantID == uuid.Nil {
		return nil, ErrVariantRequired
	}
	date, err := reservation.ParseBookingDate(in.Date)
	if err != nil {
		return nil, err
	}
	mode, err := reservation.ParseMode(in.Mode)
	if err != nil {
		return nil, err
	}

	var result *BookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		if idempotencyKey != nil {
			rec := shared.IdempotencyRecord{
				Key:         *idempotencyKey,
				CustomerID:  actor.Subject,
				Endpoint:    bookingEndpoint,
				Status:      shared.IdempotencyStatusProcessing,
				RequestHash: requestHash(in.VariantID, date, mode),
				ExpiresAt:   c.clock.Now().Add(c.cfg.IdempotencyTTL),
			}
			replayed, err := c.claimIdempotencyKey(ctx, tx, rec)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = &BookingResult{Reservation: replayed, Replayed: true}
				return nil
			}
		}

		res, err := c.commit(ctx, tx, actor.Subject, in.VariantID, date, mode)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, actor.Subject, res.ID()); err != nil {
				return err
			}
		}

		result = &BookingResult{Reservation: res}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		c.invalidator.InvalidateDate(ctx, date)
		slog.Info("reservation committed",
			slog.String("reservation_id", result.Reservation.ID().String()),
			slog.String("variant_id", result.Reservation.VariantID().String()),
			slog.String("operator_id", result.Reservation.OperatorID()),
			slog.String("date", date.String()),
			slog.String("mode", mode.String()))
	}
	return result, nil
}

// commit runs the check-then-insert. The insert is constrained, so a concurrent
// winner surfaces as a Conflict from Create.
func (c *bookingCommandsImpl) commit(
	ctx context.Context,
	tx shared.Tx,
	customerID string,
	variantID uuid.UUID,
	date reservation.BookingDate,
	mode reservation.Mode,
) (*reservation.Reservation, error) {
	variant, err := tx.Reads().VariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	booked, err := tx.Reservations().ExistsForVariant(ctx, tx.DB(), variantID, date)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, reservation.ErrVariantBooked
	}

	candidates, err := tx.Reads().CandidateOperators(ctx, variantID)
	if err != nil {
		return nil, err
	}
	busy, err := tx.Reservations().BusyOperators(ctx, tx.DB(), date)
	if err != nil {
		return nil, err
	}
	operatorID, err := assignment.Select(mode, candidates, busy)
	if err != nil {
		return nil, err
	}

	res, err := reservation.NewReservation(c.clock, customerID, variant.Variant.ID, variant.Resource.ID, operatorID, date)
	if err != nil {
		return nil, err
	}
	if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
		return nil, err
	}

	if err := c.enqueueCommitted(ctx, tx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *bookingCommandsImpl) enqueueCommitted(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	payload, err := json.Marshal(shared.ReservationCommittedEvent{
		ReservationID: res.ID(),
		CustomerID:    res.CustomerID(),
		OperatorID:    res.OperatorID(),
		VariantID:     res.VariantID(),
		ResourceID:    res.ResourceID(),
		BookingDate:   res.Date().String(),
		CommittedAt:   res.CreatedAt(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
		Kind:    shared.NotificationKindAMQP,
		Topic:   shared.TopicReservationCommitted,
		Payload: payload,
		RunAt:   c.clock.Now(),
	})
}

// claimIdempotencyKey returns the original reservation for a completed replay,
// nil when this request owns the key and should proceed.
func (c *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, rec shared.IdempotencyRecord) (*reservation.Reservation, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), rec)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, rec.Key, rec.CustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// deleted by the janitor between the two statements
			return nil, ErrIdempotencyInProgress
		}
		return nil, err
	}

	if existing.Expired(c.clock.Now()) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), rec)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != rec.RequestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errMissingReplayResult
		}
		return tx.Reads().ReservationByID(ctx, *existing.ResultReservationID)
	default:
		return nil, ErrIdempotencyInProgress
	}
}

func requestHash(variantID uuid.UUID, date reservation.BookingDate, mode reservation.Mode) string {
	sum := sha256.Sum256([]byte(variantID.String() + "|" + date.String() + "|" + mode.String()))
	return hex.EncodeToString(sum[:])
}
