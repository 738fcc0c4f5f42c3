package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WidgetServiceTestSuite defines the test suite for WidgetService
type WidgetServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockWidgetRepositoryInterface
	mockCache  *mocks.MockConfigCache
	mockAudit  *mocks.MockAuditRecorder
	mockEvents *mocks.MockEventPublisher
	service    *service.WidgetService
	actor      service.Actor
	orgID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WidgetServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWidgetRepositoryInterface(suite.ctrl)
	suite.mockCache = mocks.NewMockConfigCache(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditRecorder(suite.ctrl)
	suite.mockEvents = mocks.NewMockEventPublisher(suite.ctrl)
	suite.service = service.NewWidgetService(suite.mockRepo, suite.mockCache, time.Minute, suite.mockAudit, suite.mockEvents, validator.New())
	suite.actor = service.Actor{UserID: uuid.New(), Email: "admin@acme.io"}
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *WidgetServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WidgetServiceTestSuite) widget() *models.Widget {
	return &models.Widget{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		Name:           "Support",
		PublicKey:      "wgt_abcdefghijkmnopqrstuvwxy",
		AllowedOrigins: json.RawMessage(`["https://acme.io"]`),
		Settings:       json.RawMessage(`{"theme_color":"#2563eb","position":"bottom-right"}`),
		IsActive:       true,
		Organization:   &models.Organization{Name: "Acme", Status: models.OrganizationStatusActive},
	}
}

// TestCreateWidgetMergesDefaults tests key generation, origin normalization and default settings
func (suite *WidgetServiceTestSuite) TestCreateWidgetMergesDefaults() {
	var created *models.Widget
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(w *models.Widget) error {
		w.ID = uuid.New()
		created = w
		return nil
	})
	suite.mockAudit.EXPECT().Record(suite.actor, gomock.Any(), "widget.create", "widget", gomock.Any(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(suite.orgID, webhook.EventWidgetCreated, gomock.Any())

	resp, err := suite.service.Create(suite.actor, suite.orgID, &service.CreateWidgetRequest{
		Name:           " Support ",
		AllowedOrigins: []string{"https://Acme.io/", "https://acme.io", "http://localhost:3000"},
		Settings:       json.RawMessage(`{"theme_color":"#ff0000","avatar":"bot.png"}`),
	})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), created)
	assert.Equal(suite.T(), "Support", resp.Name)
	assert.Len(suite.T(), resp.PublicKey, 28)
	assert.Equal(suite.T(), []string{"https://acme.io", "http://localhost:3000"}, resp.AllowedOrigins)
	assert.True(suite.T(), resp.IsActive)

	var settings map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(resp.Settings, &settings))
	assert.Equal(suite.T(), "#ff0000", settings["theme_color"])
	assert.Equal(suite.T(), "bottom-right", settings["position"])
	assert.Equal(suite.T(), "bot.png", settings["avatar"])
}

// TestCreateWidgetInvalidSettings tests settings validation
func (suite *WidgetServiceTestSuite) TestCreateWidgetInvalidSettings() {
	_, err := suite.service.Create(suite.actor, suite.orgID, &service.CreateWidgetRequest{
		Name:     "Support",
		Settings: json.RawMessage(`{"position":"top-center"}`),
	})
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateWidgetInvalidOrigin tests origin validation
func (suite *WidgetServiceTestSuite) TestCreateWidgetInvalidOrigin() {
	_, err := suite.service.Create(suite.actor, suite.orgID, &service.CreateWidgetRequest{
		Name:           "Support",
		AllowedOrigins: []string{"https://acme.io/embed"},
	})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetOtherOrganization tests that widgets are scoped to their organization
func (suite *WidgetServiceTestSuite) TestGetOtherOrganization() {
	w := suite.widget()
	w.OrganizationID = uuid.New()
	suite.mockRepo.EXPECT().GetByID(w.ID).Return(w, nil)

	_, err := suite.service.Get(suite.orgID, w.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWidgetNotFound)
}

// TestPatchSettingsRemovesKeys tests merge-patch semantics, including null deletes
func (suite *WidgetServiceTestSuite) TestPatchSettingsRemovesKeys() {
	w := suite.widget()
	suite.mockRepo.EXPECT().GetByID(w.ID).Return(w, nil)
	suite.mockRepo.EXPECT().Update(w).Return(nil)
	suite.mockCache.EXPECT().Delete(gomock.Any(), "widget:config:"+w.PublicKey).Return(nil)
	suite.mockAudit.EXPECT().Record(suite.actor, gomock.Any(), "widget.settings_update", "widget", w.ID.String(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(suite.orgID, webhook.EventWidgetUpdated, gomock.Any())

	resp, err := suite.service.PatchSettings(suite.actor, suite.orgID, w.ID, json.RawMessage(`{"position":null,"greeting":"Hello"}`))

	require.NoError(suite.T(), err)
	assert.JSONEq(suite.T(), `{"theme_color":"#2563eb","greeting":"Hello"}`, string(resp.Settings))
}

// TestPatchSettingsInvalidColor tests that a patch producing invalid settings is rejected
func (suite *WidgetServiceTestSuite) TestPatchSettingsInvalidColor() {
	w := suite.widget()
	suite.mockRepo.EXPECT().GetByID(w.ID).Return(w, nil)

	_, err := suite.service.PatchSettings(suite.actor, suite.orgID, w.ID, json.RawMessage(`{"theme_color":"blue-ish"}`))
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestPatchSettingsRejectsNonObject tests that a patch replacing the whole document must leave an object
func (suite *WidgetServiceTestSuite) TestPatchSettingsRejectsNonObject() {
	for _, patch := range []string{`null`, `"x"`, `42`, `[1]`} {
		suite.Run(patch, func() {
			w := suite.widget()
			suite.mockRepo.EXPECT().GetByID(w.ID).Return(w, nil)

			_, err := suite.service.PatchSettings(suite.actor, suite.orgID, w.ID, json.RawMessage(patch))

			require.Error(suite.T(), err)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.NotEqual(suite.T(), "null", string(w.Settings))
		})
	}
}

// TestRotateKeyInvalidatesBothKeys tests that the old key is dropped from the cache
func (suite *WidgetServiceTestSuite) TestRotateKeyInvalidatesBothKeys() {
	w := suite.widget()
	oldKey := w.PublicKey

	suite.mockRepo.EXPECT().GetByID(w.ID).Return(w, nil)
	suite.mockRepo.EXPECT().Update(w).Return(nil)
	suite.mockCache.EXPECT().Delete(gomock.Any(), gomock.Not("widget:config:"+oldKey)).Return(nil)
	suite.mockCache.EXPECT().Delete(gomock.Any(), "widget:config:"+oldKey).Return(nil)
	suite.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), "widget.rotate_key", "widget", gomock.Any(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.service.RotateKey(suite.actor, suite.orgID, w.ID)

	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), oldKey, resp.PublicKey)
}

// TestDeleteWidget tests deletion and the widget.deleted event
func (suite *WidgetServiceTestSuite) TestDeleteWidget() {
	w := suite.widget()
	suite.mockRepo.EXPECT().GetByID(w.ID).Return(w, nil)
	suite.mockRepo.EXPECT().Delete(w.ID).Return(nil)
	suite.mockCache.EXPECT().Delete(gomock.Any(), "widget:config:"+w.PublicKey).Return(errors.New("redis down"))
	suite.mockAudit.EXPECT().Record(suite.actor, gomock.Any(), "widget.delete", "widget", w.ID.String(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(suite.orgID, webhook.EventWidgetDeleted, gomock.Any())

	assert.NoError(suite.T(), suite.service.Delete(suite.actor, suite.orgID, w.ID))
}

// TestPublicConfigCacheMiss tests loading from the repository and populating the cache
func (suite *WidgetServiceTestSuite) TestPublicConfigCacheMiss() {
	w := suite.widget()
	key := "widget:config:" + w.PublicKey

	suite.mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().GetByPublicKey(w.PublicKey).Return(w, nil)
	suite.mockCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Minute).Return(nil)

	cfg, err := suite.service.PublicConfig(context.Background(), w.PublicKey, "https://acme.io")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme", cfg.OrganizationName)
	assert.Equal(suite.T(), []string{"https://acme.io"}, cfg.AllowedOrigins)
}

// TestPublicConfigCacheHit tests serving from the cache without touching the repository
func (suite *WidgetServiceTestSuite) TestPublicConfigCacheHit() {
	suite.mockCache.EXPECT().Get(gomock.Any(), "widget:config:wgt_cached", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			doc := `{"config":{"public_key":"wgt_cached","name":"Sales","organization_name":"Acme","settings":{}},"origins":["https://acme.io"]}`
			return true, json.Unmarshal([]byte(doc), dest)
		})

	cfg, err := suite.service.PublicConfig(context.Background(), "wgt_cached", "https://acme.io")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sales", cfg.Name)

	suite.mockCache.EXPECT().Get(gomock.Any(), "widget:config:wgt_cached", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			return true, json.Unmarshal([]byte(`{"config":{"public_key":"wgt_cached"},"origins":["https://acme.io"]}`), dest)
		})
	_, err = suite.service.PublicConfig(context.Background(), "wgt_cached", "https://evil.example")
	assert.ErrorIs(suite.T(), err, apperrors.ErrOriginNotAllowed)
}

// TestPublicConfigCacheErrorFallsBack tests that cache failures do not break the widget
func (suite *WidgetServiceTestSuite) TestPublicConfigCacheErrorFallsBack() {
	w := suite.widget()
	suite.mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	suite.mockRepo.EXPECT().GetByPublicKey(w.PublicKey).Return(w, nil)
	suite.mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	cfg, err := suite.service.PublicConfig(context.Background(), w.PublicKey, "")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), w.PublicKey, cfg.PublicKey)
}

// TestPublicConfigSuspendedOrganization tests that suspended tenants serve nothing
func (suite *WidgetServiceTestSuite) TestPublicConfigSuspendedOrganization() {
	w := suite.widget()
	w.Organization.Status = models.OrganizationStatusSuspended
	suite.mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().GetByPublicKey(w.PublicKey).Return(w, nil)

	_, err := suite.service.PublicConfig(context.Background(), w.PublicKey, "https://acme.io")
	assert.ErrorIs(suite.T(), err, apperrors.ErrWidgetNotFound)
}

// TestPublicConfigUnknownKey tests an unknown public key
func (suite *WidgetServiceTestSuite) TestPublicConfigUnknownKey() {
	suite.mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().GetByPublicKey("wgt_missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.PublicConfig(context.Background(), "wgt_missing", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrWidgetNotFound)
}

// TestInvalidateOrganization tests dropping cache entries for every widget
func (suite *WidgetServiceTestSuite) TestInvalidateOrganization() {
	a, b := suite.widget(), suite.widget()
	b.PublicKey = "wgt_other"
	suite.mockRepo.EXPECT().GetByOrganizationID(suite.orgID, 100, 0).Return([]models.Widget{*a, *b}, int64(2), nil)
	suite.mockCache.EXPECT().Delete(gomock.Any(), "widget:config:"+a.PublicKey, "widget:config:wgt_other").Return(nil)

	assert.NoError(suite.T(), suite.service.InvalidateOrganization(context.Background(), suite.orgID))
}

// TestWidgetServiceTestSuite runs the test suite
func TestWidgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WidgetServiceTestSuite))
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"empty list allows all", nil, "https://any.example", true},
		{"wildcard", []string{"*"}, "https://any.example", true},
		{"no origin header", []string{"https://acme.io"}, "", true},
		{"exact match", []string{"https://acme.io"}, "https://acme.io", true},
		{"case and trailing slash", []string{"https://acme.io"}, "HTTPS://ACME.IO/", true},
		{"scheme mismatch", []string{"https://acme.io"}, "http://acme.io", false},
		{"other host", []string{"https://acme.io"}, "https://evil.example", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.OriginAllowed(tt.allowed, tt.origin))
		})
	}
}
