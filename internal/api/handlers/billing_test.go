package handlers

import (
	"errors"
	"net/http"
	"testing"

	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"
	"widget-admin-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBillingHandlerGetKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBilling := mocks.NewMockBillingServiceInterface(ctrl)
	handler := NewBillingHandler(mockBilling)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/admin/billing/kpis", handler.GetKPIs)

	t.Run("success", func(t *testing.T) {
		mockBilling.EXPECT().KPIs().Return(&service.BillingKPIResponse{
			Currency:            "USD",
			MRR:                 "128.00",
			ARR:                 "1536.00",
			ActiveSubscriptions: 2,
			PlanBreakdown: []service.PlanKPI{
				{Plan: "starter", Subscriptions: 1, MRR: "29.00"},
				{Plan: "pro", Subscriptions: 1, MRR: "99.00"},
			},
		}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/billing/kpis", nil)

		var response service.BillingKPIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "128.00", response.MRR)
		assert.Equal(t, "1536.00", response.ARR)
		assert.Len(t, response.PlanBreakdown, 2)
	})

	t.Run("service failure", func(t *testing.T) {
		mockBilling.EXPECT().KPIs().Return(nil, errors.New("connection reset"))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/billing/kpis", nil)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
