//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/handler/dto/response"
	"fleet-dispatch/tests/common/dbtest"
	httptesthelper "fleet-dispatch/tests/common/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RatingSuite struct {
	SharedSuite
}

func TestRatingSuite(t *testing.T) {
	suite.Run(t, new(RatingSuite))
}

func (s *RatingSuite) TestCreateRating() {
	s.Run("customer with a reservation rates the operator", func() {
		fleet := s.seedFleet()
		dbtest.CreateReservation(s.T(), s.DB, "cust-1", "alice", fleet.variantID, bookingDate)
		comment := "smooth ride"

		w := s.do(s.T(), http.MethodPost, "/api/ratings",
			map[string]any{"operator_id": "alice", "score": 5, "comment": comment}, s.token("cust-1", auth.RoleCustomer))

		var resp response.RatingResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		assert.Equal(s.T(), 5, resp.Score)
		require.NotNil(s.T(), resp.Comment)
		assert.Equal(s.T(), comment, *resp.Comment)
	})

	s.Run("new rating changes the best rated choice", func() {
		fleet := s.seedFleet()
		_, other := dbtest.CreateResource(s.T(), s.DB, "Ford", "Transit", 2021)
		dbtest.CreateReservation(s.T(), s.DB, "cust-1", "bob", other, "2031-03-01")
		for range 4 {
			w := s.do(s.T(), http.MethodPost, "/api/ratings",
				map[string]any{"operator_id": "bob", "score": 1}, s.token("cust-1", auth.RoleCustomer))
			require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
		}

		w := s.do(s.T(), http.MethodPost, "/api/bookings", bookingBody(fleet.variantID, bookingDate, "best"), s.token("cust-2", auth.RoleCustomer))

		var resp response.BookingResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		assert.Equal(s.T(), "alice", resp.OperatorID)
	})

	s.Run("no reservation with the operator", func() {
		s.seedFleet()

		w := s.do(s.T(), http.MethodPost, "/api/ratings",
			map[string]any{"operator_id": "alice", "score": 4}, s.token("cust-1", auth.RoleCustomer))

		httptesthelper.AssertErrorResponse(s.T(), w, http.StatusForbidden, "no reservation with this operator")
	})

	s.Run("unknown operator", func() {
		s.seedFleet()

		w := s.do(s.T(), http.MethodPost, "/api/ratings",
			map[string]any{"operator_id": "zed", "score": 4}, s.token("cust-1", auth.RoleCustomer))

		httptesthelper.AssertErrorResponse(s.T(), w, http.StatusNotFound, "operator not found")
	})

	s.Run("score out of range", func() {
		s.seedFleet()

		w := s.do(s.T(), http.MethodPost, "/api/ratings",
			map[string]any{"operator_id": "alice", "score": 6}, s.token("cust-1", auth.RoleCustomer))

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
