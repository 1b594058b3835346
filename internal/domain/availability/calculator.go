package availability

import (
	"sort"

	"fleet-dispatch/internal/domain/resource"

	"github.com/google/uuid"
)

// Pairing is one capability joined with its catalog entry.
type Pairing struct {
	Resource   resource.Resource
	Variant    resource.Variant
	OperatorID string
}

// Snapshot is everything the calculator needs for one date, read at a single
// point in time.
type Snapshot struct {
	Pairings       []Pairing
	BookedVariants map[uuid.UUID]struct{}
	BusyOperators  map[string]struct{}
}

// Slot is a (resource, variant, operator) triple that could be booked.
type Slot struct {
	Resource   resource.Resource
	Variant    resource.Variant
	OperatorID string
}

// Calculate keeps a pairing iff neither its variant nor its operator is
// reserved. Output is ordered by make, model, year, variant id, operator id.
func Calculate(snap Snapshot) []Slot {
	slots := make([]Slot, 0, len(snap.Pairings))
	for _, p := range snap.Pairings {
		if _, booked := snap.BookedVariants[p.Variant.ID]; booked {
			continue
		}
		if _, busy := snap.BusyOperators[p.OperatorID]; busy {
			continue
		}
		slots = append(slots, Slot(p))
	}

	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.Resource.Make != b.Resource.Make {
			return a.Resource.Make < b.Resource.Make
		}
		if a.Resource.Model != b.Resource.Model {
			return a.Resource.Model < b.Resource.Model
		}
		if a.Resource.Year != b.Resource.Year {
			return a.Resource.Year < b.Resource.Year
		}
		if a.Variant.ID != b.Variant.ID {
			return a.Variant.ID.String() < b.Variant.ID.String()
		}
		return a.OperatorID < b.OperatorID
	})
	return slots
}
