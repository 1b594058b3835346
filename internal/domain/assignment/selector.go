package assignment

import (
	"sort"

	"fleet-dispatch/internal/domain/rating"
	"fleet-dispatch/internal/domain/reservation"
	"fleet-dispatch/internal/pkg/errs"
)

var ErrNoEligibleOperator = errs.NewKind(errs.ErrConflict, "no eligible operator")

// Candidate is an operator certified for the requested variant, with its
// rating totals. Stats may be zero for unrated operators.
type Candidate struct {
	OperatorID string
	Stats      rating.Stats
}

// Select picks one operator for a booking. Operators in busy already hold a
// reservation on the booking date and are never chosen.
func Select(mode reservation.Mode, candidates []Candidate, busy map[string]struct{}) (string, error) {
	eligible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, taken := busy[c.OperatorID]; taken {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return "", ErrNoEligibleOperator
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].OperatorID < eligible[j].OperatorID
	})

	switch mode {
	case reservation.ModeFirstAvailable:
		return eligible[0].OperatorID, nil
	case reservation.ModeBestRated:
		best := eligible[0]
		for _, c := range eligible[1:] {
			// strict: ties keep the lower id found first
			if c.Stats.CompareMean(best.Stats) > 0 {
				best = c
			}
		}
		return best.OperatorID, nil
	default:
		return "", reservation.ErrInvalidMode
	}
}
