//go:build unit || e2e

package builder

import (
	"time"

	"fleet-dispatch/internal/domain/rating"
	reqdto "fleet-dispatch/internal/handler/dto/request"
)

type RatingBuilder struct {
	OperatorID string
	CustomerID string
	Score      int
	Comment    *string
	CreatedAt  time.Time
}

func NewRatingBuilder() *RatingBuilder {
	return &RatingBuilder{
		OperatorID: "alice",
		CustomerID: "cust-1",
		Score:      5,
		CreatedAt:  time.Date(2030, 6, 2, 18, 0, 0, 0, time.UTC),
	}
}

func (b *RatingBuilder) With(mutate func(*RatingBuilder)) *RatingBuilder {
	mutate(b)
	return b
}

func (b *RatingBuilder) WithScore(score int) *RatingBuilder {
	b.Score = score
	return b
}

func (b *RatingBuilder) WithComment(comment string) *RatingBuilder {
	b.Comment = &comment
	return b
}

// BuildDomain panics on invalid builder state; use the domain constructors
// directly when testing validation.
func (b *RatingBuilder) BuildDomain() *rating.Rating {
	score, err := rating.NewScore(b.Score)
	if err != nil {
		panic("RatingBuilder: " + err.Error())
	}
	comment, err := rating.NewComment(b.Comment)
	if err != nil {
		panic("RatingBuilder: " + err.Error())
	}
	r, err := rating.NewRating(b.OperatorID, b.CustomerID, score, comment, b.CreatedAt)
	if err != nil {
		panic("RatingBuilder: " + err.Error())
	}
	return r
}

func (b *RatingBuilder) BuildCreateRequestDTO() reqdto.CreateRatingRequest {
	return reqdto.CreateRatingRequest{
		OperatorID: b.OperatorID,
		Score:      b.Score,
		Comment:    b.Comment,
	}
}
