//go:build e2e

package e2e

import (
	"net/http/httptest"
	"testing"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/tests/common/authtest"
	"fleet-dispatch/tests/common/dbtest"
	httptesthelper "fleet-dispatch/tests/common/httptest"

	"github.com/google/uuid"
)

const bookingDate = "2031-03-14"

type catalog struct {
	resourceID uuid.UUID
	variantID  uuid.UUID
}

// seedFleet creates one single-variant resource with alice (4.0 over 3
// ratings) and bob (4.8 over 5 ratings) both certified for it.
func (s *SharedSuite) seedFleet() catalog {
	t := s.T()
	resourceID, variantID := dbtest.CreateResource(t, s.DB, "Toyota", "Prius", 2022)
	for _, id := range []string{"alice", "bob"} {
		dbtest.CreateOperator(t, s.DB, id)
		dbtest.DeclareCapability(t, s.DB, id, variantID)
	}
	dbtest.CreateRatings(t, s.DB, "alice", 4, 4, 4)
	dbtest.CreateRatings(t, s.DB, "bob", 5, 5, 5, 5, 4)
	return catalog{resourceID: resourceID, variantID: variantID}
}

func (s *SharedSuite) token(subject string, role auth.Role) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), subject, role)
}

func (s *SharedSuite) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	return httptesthelper.PerformRequest(t, s.Router, method, path, body, token)
}

func bookingBody(variantID uuid.UUID, date, mode string) map[string]any {
	body := map[string]any{"variant_id": variantID, "date": date}
	if mode != "" {
		body["mode"] = mode
	}
	return body
}
