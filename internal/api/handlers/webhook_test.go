package handlers

import (
	"net/http"
	"testing"

	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"
	"widget-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockWebhookServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	orgID       uuid.UUID
	hookID      uuid.UUID
}

func (suite *WebhookHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockWebhookServiceInterface(suite.ctrl)
	suite.orgID = uuid.New()
	suite.hookID = uuid.New()
	handler := NewWebhookHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	hooks := suite.httpSuite.Router.Group("/api/v1/organizations/:id/webhooks")
	{
		hooks.POST("", handler.CreateWebhook)
		hooks.GET("", handler.ListWebhooks)
		hooks.GET("/:webhookId", handler.GetWebhook)
		hooks.PUT("/:webhookId", handler.UpdateWebhook)
		hooks.DELETE("/:webhookId", handler.DeleteWebhook)
		hooks.POST("/:webhookId/rotate-secret", handler.RotateSecret)
		hooks.POST("/:webhookId/test", handler.SendTest)
		hooks.GET("/:webhookId/deliveries", handler.ListDeliveries)
		hooks.POST("/:webhookId/deliveries/:deliveryId/redeliver", handler.Redeliver)
	}
}

func (suite *WebhookHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WebhookHandlerTestSuite) base() string {
	return "/api/v1/organizations/" + suite.orgID.String() + "/webhooks"
}

func (suite *WebhookHandlerTestSuite) hook() string {
	return suite.base() + "/" + suite.hookID.String()
}

func (suite *WebhookHandlerTestSuite) TestCreateWebhookReturnsSecret() {
	suite.mockService.EXPECT().Create(gomock.Any(), suite.orgID, &service.CreateWebhookRequest{
		URL:    "https://hooks.example.com/widget",
		Events: []string{"member.added", "widget.updated"},
	}).Return(&service.WebhookSecretResponse{
		Webhook: service.WebhookResponse{ID: suite.hookID, IsActive: true},
		Secret:  "whsec_123",
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.base(), map[string]interface{}{
		"url":    "https://hooks.example.com/widget",
		"events": []string{"member.added", "widget.updated"},
	})

	var response service.WebhookSecretResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "whsec_123", response.Secret)
}

func (suite *WebhookHandlerTestSuite) TestCreateWebhookUnknownEvent() {
	suite.mockService.EXPECT().Create(gomock.Any(), suite.orgID, gomock.Any()).Return(nil, apperrors.ErrInvalidWebhookEvent)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.base(), map[string]interface{}{
		"url": "https://hooks.example.com", "events": []string{"bogus"},
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "unknown event")
}

func (suite *WebhookHandlerTestSuite) TestCRUD() {
	suite.mockService.EXPECT().List(suite.orgID).Return([]service.WebhookResponse{{ID: suite.hookID}}, nil)
	suite.mockService.EXPECT().Get(suite.orgID, suite.hookID).Return(&service.WebhookResponse{ID: suite.hookID}, nil)
	suite.mockService.EXPECT().Update(gomock.Any(), suite.orgID, suite.hookID, gomock.Any()).
		DoAndReturn(func(_ service.Actor, _, _ uuid.UUID, req *service.UpdateWebhookRequest) (*service.WebhookResponse, error) {
			assert.True(suite.T(), *req.IsActive)
			return &service.WebhookResponse{ID: suite.hookID, IsActive: true}, nil
		})
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.orgID, suite.hookID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.base(), nil)
	var list []service.WebhookResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &list)
	assert.Len(suite.T(), list, 1)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, suite.hook(), nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodPut, suite.hook(), map[string]bool{"is_active": true})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, suite.hook(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *WebhookHandlerTestSuite) TestRotateSecret() {
	suite.mockService.EXPECT().RotateSecret(gomock.Any(), suite.orgID, suite.hookID).
		Return(&service.WebhookSecretResponse{Secret: "whsec_new"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.hook()+"/rotate-secret", nil)
	var response service.WebhookSecretResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "whsec_new", response.Secret)
}

func (suite *WebhookHandlerTestSuite) TestSendTest() {
	suite.Run("queued", func() {
		suite.mockService.EXPECT().SendTest(gomock.Any(), suite.orgID, suite.hookID).
			Return(&service.DeliveryResponse{Event: "webhook.test", Status: "pending"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.hook()+"/test", nil)
		var response service.DeliveryResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusAccepted, &response)
		assert.Equal(suite.T(), "webhook.test", response.Event)
	})

	suite.Run("unknown webhook", func() {
		suite.mockService.EXPECT().SendTest(gomock.Any(), suite.orgID, suite.hookID).Return(nil, apperrors.ErrWebhookNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.hook()+"/test", nil)
		assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	})
}

func (suite *WebhookHandlerTestSuite) TestDeliveries() {
	deliveryID := uuid.New()
	suite.mockService.EXPECT().ListDeliveries(suite.orgID, suite.hookID, 1, 20).Return(&service.DeliveryListResponse{
		Deliveries: []service.DeliveryResponse{{ID: deliveryID, Status: "failed", Attempts: 5}},
		Total:      1, Page: 1, PageSize: 20,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.hook()+"/deliveries", nil)
	var list service.DeliveryListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &list)
	assert.Equal(suite.T(), 5, list.Deliveries[0].Attempts)

	suite.Run("redeliver", func() {
		suite.mockService.EXPECT().Redeliver(gomock.Any(), suite.orgID, suite.hookID, deliveryID).
			Return(&service.DeliveryResponse{ID: deliveryID, Status: "pending"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.hook()+"/deliveries/"+deliveryID.String()+"/redeliver", nil)
		assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)
	})

	suite.Run("redeliver in flight", func() {
		suite.mockService.EXPECT().Redeliver(gomock.Any(), suite.orgID, suite.hookID, deliveryID).
			Return(nil, apperrors.ErrDeliveryAlreadyRunning)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.hook()+"/deliveries/"+deliveryID.String()+"/redeliver", nil)
		assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	})

	suite.Run("invalid delivery id", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.hook()+"/deliveries/xyz/redeliver", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid delivery ID")
	})
}

func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}
