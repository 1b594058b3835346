package response

import (
	"time"

	"fleet-dispatch/internal/domain/rating"

	"github.com/google/uuid"
)

type RatingResponse struct {
	RatingID   uuid.UUID `json:"rating_id"`
	OperatorID string    `json:"operator_id"`
	Score      int       `json:"score"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromRating(r *rating.Rating) *RatingResponse {
	return &RatingResponse{
		RatingID:   r.ID(),
		OperatorID: r.OperatorID(),
		Score:      r.Score().Value(),
		Comment:    r.Comment().Ptr(),
		CreatedAt:  r.CreatedAt(),
	}
}
