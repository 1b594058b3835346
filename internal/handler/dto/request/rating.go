package request

import "fleet-dispatch/internal/usecase/commands"

type CreateRatingRequest struct {
	OperatorID string  `json:"operator_id" binding:"required,max=100"`
	Score      int     `json:"score" binding:"required,min=1,max=5"`
	Comment    *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateRatingRequest) ToInput() commands.RatingInput {
	return commands.RatingInput{
		OperatorID: r.OperatorID,
		Score:      r.Score,
		Comment:    r.Comment,
	}
}
