package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"
	"widget-admin-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDirectoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDirectoryServiceInterface(ctrl)
	handler := NewDirectoryHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/directory/users/search", handler.UserSearch)

	t.Run("results", func(t *testing.T) {
		mockService.EXPECT().SearchUsersByCN("jo").Return([]service.DirectoryUser{{Name: "john", Mail: "john@example.com"}}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/directory/users/search?cn=jo", nil)
		var body struct {
			Result []service.DirectoryUser `json:"result"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "john@example.com", body.Result[0].Mail)
	})

	t.Run("missing cn", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/directory/users/search", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "missing query parameter: cn")
	})

	t.Run("not configured", func(t *testing.T) {
		mockService.EXPECT().SearchUsersByCN("jo").Return(nil, apperrors.ErrDirectoryNotConfigured)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/directory/users/search?cn=jo", nil)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("server down", func(t *testing.T) {
		mockService.EXPECT().SearchUsersByCN("jo").Return(nil, fmt.Errorf("%w: dial tcp: refused", service.ErrDirectoryUnavailable))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/directory/users/search?cn=jo", nil)
		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}
