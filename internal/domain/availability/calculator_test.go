//go:build unit

package availability_test

import (
	"testing"

	"fleet-dispatch/internal/domain/availability"
	"fleet-dispatch/internal/domain/resource"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

var (
	hiace  = resource.Resource{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"), Make: "Toyota", Model: "Hiace", Year: 2021}
	sprint = resource.Resource{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000b"), Make: "Mercedes", Model: "Sprinter", Year: 2019}

	hiaceStd  = resource.Variant{ID: uuid.MustParse("10000000-0000-0000-0000-000000000001"), ResourceID: hiace.ID, Label: "standard"}
	hiaceLong = resource.Variant{ID: uuid.MustParse("10000000-0000-0000-0000-000000000002"), ResourceID: hiace.ID, Label: "long"}
	sprintStd = resource.Variant{ID: uuid.MustParse("10000000-0000-0000-0000-000000000003"), ResourceID: sprint.ID, Label: "standard"}
)

func pairing(r resource.Resource, v resource.Variant, op string) availability.Pairing {
	return availability.Pairing{Resource: r, Variant: v, OperatorID: op}
}

func slot(r resource.Resource, v resource.Variant, op string) availability.Slot {
	return availability.Slot{Resource: r, Variant: v, OperatorID: op}
}

func TestCalculate(t *testing.T) {
	pairings := []availability.Pairing{
		pairing(hiace, hiaceStd, "bob"),
		pairing(hiace, hiaceStd, "alice"),
		pairing(hiace, hiaceLong, "alice"),
		pairing(sprint, sprintStd, "carol"),
	}

	testCases := []struct {
		name string
		snap availability.Snapshot
		want []availability.Slot
	}{
		{
			name: "nothing booked keeps every pairing in stable order",
			snap: availability.Snapshot{Pairings: pairings},
			want: []availability.Slot{
				slot(sprint, sprintStd, "carol"),
				slot(hiace, hiaceStd, "alice"),
				slot(hiace, hiaceStd, "bob"),
				slot(hiace, hiaceLong, "alice"),
			},
		},
		{
			name: "booked variant drops all its operators",
			snap: availability.Snapshot{
				Pairings:       pairings,
				BookedVariants: map[uuid.UUID]struct{}{hiaceStd.ID: {}},
			},
			want: []availability.Slot{
				slot(sprint, sprintStd, "carol"),
				slot(hiace, hiaceLong, "alice"),
			},
		},
		{
			name: "busy operator is dropped for every variant",
			snap: availability.Snapshot{
				Pairings:      pairings,
				BusyOperators: map[string]struct{}{"alice": {}},
			},
			want: []availability.Slot{
				slot(sprint, sprintStd, "carol"),
				slot(hiace, hiaceStd, "bob"),
			},
		},
		{
			name: "fully booked date",
			snap: availability.Snapshot{
				Pairings:       pairings,
				BookedVariants: map[uuid.UUID]struct{}{hiaceStd.ID: {}, hiaceLong.ID: {}},
				BusyOperators:  map[string]struct{}{"carol": {}},
			},
			want: []availability.Slot{},
		},
		{
			name: "no capabilities",
			snap: availability.Snapshot{},
			want: []availability.Slot{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := availability.Calculate(tc.snap)
			if diff := cmp.Diff(tc.want, actual); diff != "" {
				t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
