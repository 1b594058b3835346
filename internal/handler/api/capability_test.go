//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/domain/capability"
	"fleet-dispatch/internal/domain/operator"
	"fleet-dispatch/internal/domain/resource"
	"fleet-dispatch/internal/handler/api"
	reqdto "fleet-dispatch/internal/handler/dto/request"
	resdto "fleet-dispatch/internal/handler/dto/response"
	"fleet-dispatch/internal/usecase/commands"
	"fleet-dispatch/internal/usecase/queries"
	"fleet-dispatch/tests/common/builder"
	"fleet-dispatch/tests/common/httptest"
	commandsmock "fleet-dispatch/tests/mock/commands"
	queriesmock "fleet-dispatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CapabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCapabilityCommands
	mockQueries  *queriesmock.MockCapabilityQueries
}

func (s *CapabilityHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCapabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCapabilityQueries(s.mockCtrl)

	h := api.NewCapabilityHandler(s.mockCommands, s.mockQueries)
	s.router.POST("/api/capabilities", fakeAuth, h.Declare)
	s.router.DELETE("/api/capabilities", fakeAuth, h.Revoke)
	s.router.GET("/api/operators/:id/capabilities", fakeAuth, h.ListForOperator)
}

func (s *CapabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCapabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CapabilityHandlerTestSuite))
}

func (s *CapabilityHandlerTestSuite) TestDeclare() {
	url := "/api/capabilities"
	variantID := uuid.New()
	resourceID := uuid.New()
	declaredAt := time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC)

	s.Run("success: operator declares for itself by variant", func() {
		target := commands.CapabilityTarget{VariantID: &variantID}
		s.mockCommands.EXPECT().Declare(gomock.Any(), builder.Operator("alice"), target).
			Return(&capability.Capability{OperatorID: "alice", VariantID: variantID, ResourceID: resourceID, CreatedAt: declaredAt}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CapabilityRequest{VariantID: &variantID}, "operator:alice")

		var body resdto.CapabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("alice", body.OperatorID)
		s.Equal(variantID, body.VariantID)
		s.Equal(resourceID, body.ResourceID)
	})

	s.Run("success: admin declares for a named operator by resource", func() {
		target := commands.CapabilityTarget{OperatorID: "bob", ResourceID: &resourceID}
		s.mockCommands.EXPECT().Declare(gomock.Any(), builder.Admin("root"), target).
			Return(&capability.Capability{OperatorID: "bob", VariantID: variantID, ResourceID: resourceID, CreatedAt: declaredAt}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CapabilityRequest{OperatorID: "bob", ResourceID: &resourceID}, "admin:root")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no target", commandsError: commands.ErrTargetRequired, expectedStatus: http.StatusBadRequest, expectedMsg: "exactly one of variant_id or resource_id"},
			{name: "ambiguous resource", commandsError: resource.ErrAmbiguousVariant, expectedStatus: http.StatusBadRequest, expectedMsg: "specify variant_id"},
			{name: "acting for another operator", commandsError: auth.ErrRoleNotAllowed, expectedStatus: http.StatusForbidden, expectedMsg: "role not allowed"},
			{name: "unknown operator", commandsError: operator.ErrOperatorNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "operator not found"},
			{name: "resource without variants", commandsError: resource.ErrResourceNoVariants, expectedStatus: http.StatusNotFound, expectedMsg: "no variants"},
			{name: "duplicate", commandsError: capability.ErrAlreadyDeclared, expectedStatus: http.StatusConflict, expectedMsg: "capability already declared"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Declare(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					reqdto.CapabilityRequest{VariantID: &variantID}, "operator:alice")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request for a non-uuid variant", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"variant_id": "nope"}, "operator:alice")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CapabilityHandlerTestSuite) TestRevoke() {
	url := "/api/capabilities"
	variantID := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().
			Revoke(gomock.Any(), builder.Operator("alice"), commands.CapabilityTarget{VariantID: &variantID}).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url,
			reqdto.CapabilityRequest{VariantID: &variantID}, "operator:alice")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 Not Found when nothing was declared", func() {
		s.mockCommands.EXPECT().Revoke(gomock.Any(), gomock.Any(), gomock.Any()).Return(capability.ErrNotDeclared)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url,
			reqdto.CapabilityRequest{VariantID: &variantID}, "operator:alice")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "capability not found")
	})
}

func (s *CapabilityHandlerTestSuite) TestListForOperator() {
	view := &queries.OperatorCapabilitiesView{
		OperatorID: "alice",
		Variants: []queries.CapabilityView{
			{
				VariantID:    uuid.New(),
				VariantLabel: "standard",
				ResourceID:   uuid.New(),
				Make:         "Toyota",
				Model:        "Prius",
				Year:         2022,
				DeclaredAt:   time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC),
			},
		},
	}

	s.Run("success: 200 OK with declared variants", func() {
		s.mockQueries.EXPECT().ListFor(gomock.Any(), "alice").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/operators/alice/capabilities", nil, customerToken)

		var body resdto.OperatorCapabilitiesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := resdto.OperatorCapabilitiesResponse{
			OperatorID: "alice",
			Variants: []resdto.CapabilityVariantResponse{{
				VariantID:    view.Variants[0].VariantID,
				VariantLabel: "standard",
				ResourceID:   view.Variants[0].ResourceID,
				Make:         "Toyota",
				Model:        "Prius",
				Year:         2022,
				DeclaredAt:   view.Variants[0].DeclaredAt,
			}},
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListFor(gomock.Any(), "bob").
			Return(&queries.OperatorCapabilitiesView{OperatorID: "bob"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/operators/bob/capabilities", nil, customerToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"operator_id":"bob","variants":[]}`, rec.Body.String())
	})

	s.Run("error: 404 Not Found for an unknown operator", func() {
		s.mockQueries.EXPECT().ListFor(gomock.Any(), "ghost").Return(nil, operator.ErrOperatorNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/operators/ghost/capabilities", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "operator not found")
	})
}
