package converter

import (
	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/domain/reservation"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:          res.ID(),
		CustomerID:  res.CustomerID(),
		VariantID:   res.VariantID(),
		ResourceID:  res.ResourceID(),
		OperatorID:  res.OperatorID(),
		BookingDate: pgconv.DateToPgtype(res.Date().Time()),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func RatingToInfra(r *rating.Rating) sqlc.CreateRatingParams {
	return sqlc.CreateRatingParams{
		ID:         r.ID(),
		OperatorID: r.OperatorID(),
		CustomerID: r.CustomerID(),
		Score:      int32(r.Score().Value()),
		Comment:    pgconv.StringPtrToPgtype(r.Comment().Ptr()),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
