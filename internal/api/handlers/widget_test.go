package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/linkrules"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"
	"widget-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WidgetHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockWidgets   *mocks.MockWidgetServiceInterface
	mockLinkRules *mocks.MockLinkRuleServiceInterface
	httpSuite     *testutils.HTTPTestSuite
	orgID         uuid.UUID
}

func (suite *WidgetHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWidgets = mocks.NewMockWidgetServiceInterface(suite.ctrl)
	suite.mockLinkRules = mocks.NewMockLinkRuleServiceInterface(suite.ctrl)
	suite.orgID = uuid.New()

	handler := NewWidgetHandler(suite.mockWidgets)
	public := NewPublicWidgetHandler(suite.mockWidgets, suite.mockLinkRules)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/public/widgets/:publicKey/config", public.GetConfig)
	suite.httpSuite.Router.POST("/public/widgets/:publicKey/messages/scan", public.ScanMessage)

	widgets := suite.httpSuite.Router.Group("/api/v1/organizations/:id/widgets")
	{
		widgets.POST("", handler.CreateWidget)
		widgets.GET("", handler.ListWidgets)
		widgets.GET("/:widgetId", handler.GetWidget)
		widgets.PUT("/:widgetId", handler.UpdateWidget)
		widgets.PATCH("/:widgetId/settings", handler.PatchSettings)
		widgets.POST("/:widgetId/rotate-key", handler.RotateKey)
		widgets.DELETE("/:widgetId", handler.DeleteWidget)
	}
}

func (suite *WidgetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WidgetHandlerTestSuite) base() string {
	return "/api/v1/organizations/" + suite.orgID.String() + "/widgets"
}

func (suite *WidgetHandlerTestSuite) TestCreateWidget() {
	suite.mockWidgets.EXPECT().Create(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ service.Actor, _ uuid.UUID, req *service.CreateWidgetRequest) (*service.WidgetResponse, error) {
			assert.Equal(suite.T(), []string{"https://shop.example.com"}, req.AllowedOrigins)
			assert.JSONEq(suite.T(), `{"theme":"dark"}`, string(req.Settings))
			return &service.WidgetResponse{ID: uuid.New(), Name: req.Name, PublicKey: "wk_abc", IsActive: true}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.base(), map[string]interface{}{
		"name":            "Storefront",
		"allowed_origins": []string{"https://shop.example.com"},
		"settings":        map[string]string{"theme": "dark"},
	})

	var response service.WidgetResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "wk_abc", response.PublicKey)
}

func (suite *WidgetHandlerTestSuite) TestListAndGetWidget() {
	id := uuid.New()
	suite.mockWidgets.EXPECT().List(suite.orgID, 1, 20).Return(&service.WidgetListResponse{
		Widgets: []service.WidgetResponse{{ID: id}}, Total: 1, Page: 1, PageSize: 20,
	}, nil)
	suite.mockWidgets.EXPECT().Get(suite.orgID, id).Return(nil, apperrors.ErrWidgetNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.base(), nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, suite.base()+"/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "widget not found")
}

func (suite *WidgetHandlerTestSuite) TestUpdateWidget() {
	id := uuid.New()
	suite.mockWidgets.EXPECT().Update(gomock.Any(), suite.orgID, id, gomock.Any()).
		DoAndReturn(func(_ service.Actor, _, _ uuid.UUID, req *service.UpdateWidgetRequest) (*service.WidgetResponse, error) {
			assert.NotNil(suite.T(), req.IsActive)
			assert.False(suite.T(), *req.IsActive)
			assert.Nil(suite.T(), req.Name)
			return &service.WidgetResponse{ID: id, IsActive: false}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.base()+"/"+id.String(), map[string]bool{"is_active": false})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *WidgetHandlerTestSuite) TestPatchSettings() {
	id := uuid.New()

	suite.Run("merge patch forwarded verbatim", func() {
		suite.mockWidgets.EXPECT().PatchSettings(gomock.Any(), suite.orgID, id, gomock.Any()).
			DoAndReturn(func(_ service.Actor, _, _ uuid.UUID, patch json.RawMessage) (*service.WidgetResponse, error) {
				assert.JSONEq(suite.T(), `{"greeting":null,"theme":"light"}`, string(patch))
				return &service.WidgetResponse{ID: id, Settings: json.RawMessage(`{"theme":"light"}`)}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, suite.base()+"/"+id.String()+"/settings",
			bytes.NewBufferString(`{"greeting":null,"theme":"light"}`))
		req.Header.Set("Content-Type", "application/merge-patch+json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPatch, suite.base()+"/"+id.String()+"/settings", bytes.NewBufferString(`{"theme":`))
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
	})

	suite.Run("settings rejected", func() {
		suite.mockWidgets.EXPECT().PatchSettings(gomock.Any(), suite.orgID, id, gomock.Any()).
			Return(nil, apperrors.ErrInvalidWidgetSettings)

		req := httptest.NewRequest(http.MethodPatch, suite.base()+"/"+id.String()+"/settings", bytes.NewBufferString(`{"position":"middle"}`))
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})
}

func (suite *WidgetHandlerTestSuite) TestRotateKeyAndDelete() {
	id := uuid.New()
	suite.mockWidgets.EXPECT().RotateKey(gomock.Any(), suite.orgID, id).Return(&service.WidgetResponse{ID: id, PublicKey: "wk_new"}, nil)
	suite.mockWidgets.EXPECT().Delete(gomock.Any(), suite.orgID, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.base()+"/"+id.String()+"/rotate-key", nil)
	var response service.WidgetResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "wk_new", response.PublicKey)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, suite.base()+"/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *WidgetHandlerTestSuite) TestPublicConfig() {
	suite.Run("allowed origin", func() {
		suite.mockWidgets.EXPECT().PublicConfig(gomock.Any(), "wk_abc", "https://shop.example.com").
			Return(&service.PublicWidgetConfig{PublicKey: "wk_abc", Name: "Storefront", Settings: json.RawMessage(`{}`)}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/public/widgets/wk_abc/config", nil,
			map[string]string{"Origin": "https://shop.example.com"})

		var response service.PublicWidgetConfig
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		assert.Equal(suite.T(), "Storefront", response.Name)
		assert.Equal(suite.T(), "public, max-age=60", recorder.Header().Get("Cache-Control"))
	})

	suite.Run("origin rejected", func() {
		suite.mockWidgets.EXPECT().PublicConfig(gomock.Any(), "wk_abc", "https://evil.example.com").
			Return(nil, apperrors.ErrOriginNotAllowed)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/public/widgets/wk_abc/config", nil,
			map[string]string{"Origin": "https://evil.example.com"})
		assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	})

	suite.Run("unknown key", func() {
		suite.mockWidgets.EXPECT().PublicConfig(gomock.Any(), "wk_gone", "").Return(nil, apperrors.ErrWidgetNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/public/widgets/wk_gone/config", nil)
		assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	})
}

func (suite *WidgetHandlerTestSuite) TestScanMessage() {
	suite.mockLinkRules.EXPECT().Scan(gomock.Any(), "wk_abc", "", "where is order 1234?").
		Return(&service.ScanResponse{Cards: []linkrules.Card{{Title: "Order 1234", URL: "https://shop.example.com/orders/1234"}}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/public/widgets/wk_abc/messages/scan",
		map[string]string{"message": "where is order 1234?"})

	var response service.ScanResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Cards, 1)
	assert.Equal(suite.T(), "https://shop.example.com/orders/1234", response.Cards[0].URL)
}

func TestWidgetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WidgetHandlerTestSuite))
}
