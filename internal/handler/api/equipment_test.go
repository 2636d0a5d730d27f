//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/handler/api"
	resdto "lab-dashboard/internal/handler/dto/response"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/usecase/commands"
	"lab-dashboard/internal/usecase/queries"
	"lab-dashboard/tests/common/builder"
	"lab-dashboard/tests/common/httptest"
	"lab-dashboard/tests/common/testutil"
	commandsmock "lab-dashboard/tests/mock/commands"
	queriesmock "lab-dashboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EquipmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEquipmentCommands
	mockQueries  *queriesmock.MockEquipmentQueries
}

func (s *EquipmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEquipmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEquipmentQueries(s.mockCtrl)
	h := api.NewEquipmentHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/equipment", fakeAuth(uuid.New(), user.RoleAdmin))
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *EquipmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEquipmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}

func (s *EquipmentHandlerTestSuite) TestCreate() {
	url := "/equipment"
	eb := builder.NewEquipmentBuilder()
	reqBody := eb.BuildCreateRequestDTO()
	view := eb.BuildView()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var got resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/equipment/" + view.ID.String()})

		want := resdto.EquipmentResponse{
			ID:        view.ID,
			Name:      view.Name,
			Type:      view.Type,
			Location:  view.Location,
			CreatedAt: view.CreatedAt,
			UpdatedAt: view.UpdatedAt,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"empty name", testutil.Field("name", "")},
			{"name too long", testutil.Field("name", strings.Repeat("a", 256))},
			{"type too long", testutil.Field("type", strings.Repeat("a", 101))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: duplicate name is 409", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("unique violation"), errs.ErrEquipmentNameTaken)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Equipment name already in use")
	})
}

func (s *EquipmentHandlerTestSuite) TestListAndGet() {
	first := builder.NewEquipmentBuilder().WithName("Centrifuge").BuildView()
	second := builder.NewEquipmentBuilder().WithName("PCR Machine").BuildView()

	s.Run("success: list keeps the query order", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.EquipmentView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment", nil, "token")

		var got struct {
			Equipment []resdto.EquipmentResponse `json:"equipment"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Equipment, 2)
		s.Equal(first.ID, got.Equipment[0].ID)
		s.Equal(second.ID, got.Equipment[1].ID)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.EquipmentView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"equipment":[]}`, rec.Body.String())
	})

	s.Run("success: get by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), first.ID).Return(first, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment/"+first.ID.String(), nil, "token")

		var got resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("Centrifuge", got.Name)
	})

	s.Run("error: malformed id is 400 without calling the query", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment/42", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: unknown id is 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrEquipmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment/"+uuid.NewString(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Equipment not found")
	})
}

func (s *EquipmentHandlerTestSuite) TestUpdate() {
	view := builder.NewEquipmentBuilder().WithName("Renamed").BuildView()
	url := "/equipment/" + view.ID.String()

	s.Run("success: only sent fields reach the command", func() {
		name := "Renamed"
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, commands.UpdateEquipmentInput{Name: &name}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Renamed"}, "token")

		var got resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("Renamed", got.Name)
	})

	s.Run("error: name over the limit is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": strings.Repeat("n", 256)}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *EquipmentHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/equipment/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"not found", errs.ErrEquipmentNotFound, http.StatusNotFound, "Equipment not found"},
			{"still reserved", errs.ErrEquipmentInUse, http.StatusConflict, "Equipment still has reservations"},
			{"database error", errors.New("connection reset"), http.StatusInternalServerError, "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
