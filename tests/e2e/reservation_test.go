//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/handler/dto/response"
	"fleet-dispatch/tests/common/dbtest"
	httptesthelper "fleet-dispatch/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReservationSuite struct {
	SharedSuite
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) TestGet() {
	s.Run("visibility by role", func() {
		fleet := s.seedFleet()
		id := dbtest.CreateReservation(s.T(), s.DB, "cust-1", "alice", fleet.variantID, bookingDate)
		path := "/api/reservations/" + id.String()

		testCases := []struct {
			name    string
			subject string
			role    auth.Role
			want    int
		}{
			{name: "owning customer", subject: "cust-1", role: auth.RoleCustomer, want: http.StatusOK},
			{name: "assigned operator", subject: "alice", role: auth.RoleOperator, want: http.StatusOK},
			{name: "admin", subject: "root", role: auth.RoleAdmin, want: http.StatusOK},
			{name: "other customer", subject: "cust-2", role: auth.RoleCustomer, want: http.StatusNotFound},
			{name: "other operator", subject: "bob", role: auth.RoleOperator, want: http.StatusNotFound},
		}

		for _, tc := range testCases {
			w := s.do(s.T(), http.MethodGet, path, nil, s.token(tc.subject, tc.role))
			assert.Equal(s.T(), tc.want, w.Code, tc.name)
		}
	})

	s.Run("joined details", func() {
		fleet := s.seedFleet()
		id := dbtest.CreateReservation(s.T(), s.DB, "cust-1", "bob", fleet.variantID, bookingDate)

		w := s.do(s.T(), http.MethodGet, "/api/reservations/"+id.String(), nil, s.token("cust-1", auth.RoleCustomer))

		var resp response.ReservationResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		assert.Equal(s.T(), "bob", resp.OperatorID)
		assert.Equal(s.T(), "standard", resp.VariantLabel)
		assert.Equal(s.T(), "Toyota", resp.Make)
		assert.Equal(s.T(), bookingDate, resp.Date)
	})

	s.Run("unknown id", func() {
		w := s.do(s.T(), http.MethodGet, "/api/reservations/"+uuid.NewString(), nil, s.token("cust-1", auth.RoleCustomer))
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *ReservationSuite) TestList() {
	s.Run("pages through a customer's reservations", func() {
		const total = 5
		for i := range total {
			_, variantID := dbtest.CreateResource(s.T(), s.DB, "Toyota", "Prius", 2022)
			op := fmt.Sprintf("op-%d", i)
			dbtest.CreateOperator(s.T(), s.DB, op)
			dbtest.CreateReservation(s.T(), s.DB, "cust-1", op, variantID, bookingDate)
		}
		_, strayVariant := dbtest.CreateResource(s.T(), s.DB, "Ford", "Transit", 2021)
		dbtest.CreateOperator(s.T(), s.DB, "stray")
		dbtest.CreateReservation(s.T(), s.DB, "cust-2", "stray", strayVariant, bookingDate)

		token := s.token("cust-1", auth.RoleCustomer)
		seen := map[uuid.UUID]struct{}{}
		after := ""
		for pages := 0; ; pages++ {
			require.Less(s.T(), pages, total, "pagination did not terminate")

			path := "/api/reservations?limit=2"
			if after != "" {
				path += "&after=" + url.QueryEscape(after)
			}
			w := s.do(s.T(), http.MethodGet, path, nil, token)
			var page response.ReservationListResponse
			httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)

			for _, item := range page.Items {
				assert.Equal(s.T(), "cust-1", item.CustomerID)
				seen[item.ID] = struct{}{}
			}
			if page.NextCursor == nil {
				break
			}
			after = *page.NextCursor
		}
		assert.Len(s.T(), seen, total)
	})

	s.Run("operator sees assignments", func() {
		fleet := s.seedFleet()
		dbtest.CreateReservation(s.T(), s.DB, "cust-1", "alice", fleet.variantID, bookingDate)

		w := s.do(s.T(), http.MethodGet, "/api/reservations", nil, s.token("alice", auth.RoleOperator))
		var page response.ReservationListResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		require.Len(s.T(), page.Items, 1)
		assert.Nil(s.T(), page.NextCursor)

		w = s.do(s.T(), http.MethodGet, "/api/reservations", nil, s.token("bob", auth.RoleOperator))
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		assert.Empty(s.T(), page.Items)
	})

	s.Run("invalid cursor", func() {
		w := s.do(s.T(), http.MethodGet, "/api/reservations?after=%25%25", nil, s.token("cust-1", auth.RoleCustomer))
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("admins cannot list", func() {
		w := s.do(s.T(), http.MethodGet, "/api/reservations", nil, s.token("root", auth.RoleAdmin))
		assert.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}
