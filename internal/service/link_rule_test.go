package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/linkrules"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LinkRuleServiceTestSuite defines the test suite for LinkRuleService
type LinkRuleServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockLinkRuleRepositoryInterface
	mockWidgets *mocks.MockWidgetRepositoryInterface
	mockMatcher *mocks.MockRuleMatcher
	mockAudit   *mocks.MockAuditRecorder
	service     *service.LinkRuleService
	actor       service.Actor
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *LinkRuleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLinkRuleRepositoryInterface(suite.ctrl)
	suite.mockWidgets = mocks.NewMockWidgetRepositoryInterface(suite.ctrl)
	suite.mockMatcher = mocks.NewMockRuleMatcher(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditRecorder(suite.ctrl)
	suite.service = service.NewLinkRuleService(suite.mockRepo, suite.mockWidgets, suite.mockMatcher, suite.mockAudit, validator.New())
	suite.actor = service.Actor{UserID: uuid.New()}
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *LinkRuleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validRuleRequest() *service.LinkRuleRequest {
	return &service.LinkRuleRequest{
		Name:      "Pricing",
		Pattern:   `\b(price|pricing|cost)\b`,
		CardTitle: "See our plans",
		CardURL:   "https://acme.io/pricing",
	}
}

// TestCreateDefaults tests default priority and activation plus matcher invalidation
func (suite *LinkRuleServiceTestSuite) TestCreateDefaults() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.LinkRule) error {
		assert.Equal(suite.T(), 100, r.Priority)
		assert.True(suite.T(), r.IsActive)
		assert.Equal(suite.T(), suite.orgID, r.OrganizationID)
		r.ID = uuid.New()
		return nil
	})
	suite.mockMatcher.EXPECT().Invalidate(suite.orgID)
	suite.mockAudit.EXPECT().Record(suite.actor, gomock.Any(), "link_rule.create", "link_rule", gomock.Any(), gomock.Any())

	resp, err := suite.service.Create(suite.actor, suite.orgID, validRuleRequest())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Pricing", resp.Name)
	assert.Equal(suite.T(), 100, resp.Priority)
}

// TestCreateInactive tests that an explicit is_active=false is kept
func (suite *LinkRuleServiceTestSuite) TestCreateInactive() {
	req := validRuleRequest()
	inactive := false
	priority := 5
	req.IsActive = &inactive
	req.Priority = &priority

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMatcher.EXPECT().Invalidate(suite.orgID)
	suite.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.service.Create(suite.actor, suite.orgID, req)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsActive)
	assert.Equal(suite.T(), 5, resp.Priority)
}

// TestCreateInvalidPattern tests that a pattern that does not compile is rejected
func (suite *LinkRuleServiceTestSuite) TestCreateInvalidPattern() {
	req := validRuleRequest()
	req.Pattern = `(unclosed`

	_, err := suite.service.Create(suite.actor, suite.orgID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPattern)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreatePatternTooLong tests the pattern length cap
func (suite *LinkRuleServiceTestSuite) TestCreatePatternTooLong() {
	req := validRuleRequest()
	req.Pattern = strings.Repeat("a", linkrules.MaxPatternLength+1)

	_, err := suite.service.Create(suite.actor, suite.orgID, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPattern)
}

// TestCreateForeignWidget tests that rules cannot target another organization's widget
func (suite *LinkRuleServiceTestSuite) TestCreateForeignWidget() {
	req := validRuleRequest()
	widgetID := uuid.New()
	req.WidgetID = &widgetID
	suite.mockWidgets.EXPECT().GetByID(widgetID).Return(&models.Widget{OrganizationID: uuid.New()}, nil)

	_, err := suite.service.Create(suite.actor, suite.orgID, req)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateMissingCardURL tests request validation
func (suite *LinkRuleServiceTestSuite) TestCreateMissingCardURL() {
	req := validRuleRequest()
	req.CardURL = "not a url"

	_, err := suite.service.Create(suite.actor, suite.orgID, req)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestDeleteInvalidatesMatcher tests deletion
func (suite *LinkRuleServiceTestSuite) TestDeleteInvalidatesMatcher() {
	rule := &models.LinkRule{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, Name: "Pricing"}
	suite.mockRepo.EXPECT().GetByID(rule.ID).Return(rule, nil)
	suite.mockRepo.EXPECT().Delete(rule.ID).Return(nil)
	suite.mockMatcher.EXPECT().Invalidate(suite.orgID)
	suite.mockAudit.EXPECT().Record(suite.actor, gomock.Any(), "link_rule.delete", "link_rule", rule.ID.String(), gomock.Any())

	assert.NoError(suite.T(), suite.service.Delete(suite.actor, suite.orgID, rule.ID))
}

// TestUpdateNotFound tests updating a missing rule
func (suite *LinkRuleServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.actor, suite.orgID, id, validRuleRequest())
	assert.ErrorIs(suite.T(), err, apperrors.ErrLinkRuleNotFound)
}

// TestTestPattern tests the dry-run endpoint
func (suite *LinkRuleServiceTestSuite) TestTestPattern() {
	saved := []linkrules.Card{{Title: "Docs", URL: "https://acme.io/docs"}}
	suite.mockMatcher.EXPECT().Match(suite.orgID, uuid.Nil, "What is the PRICE and cost?").Return(saved, nil)

	resp, err := suite.service.Test(suite.orgID, &service.TestLinkRuleRequest{
		Pattern: `price|cost`,
		Message: "What is the PRICE and cost?",
	})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Matched)
	assert.Equal(suite.T(), []string{"PRICE", "cost"}, resp.Matches)
	assert.Equal(suite.T(), saved, resp.SavedCards)
}

// TestTestPatternCaseSensitive tests that case sensitivity is honored
func (suite *LinkRuleServiceTestSuite) TestTestPatternCaseSensitive() {
	suite.mockMatcher.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := suite.service.Test(suite.orgID, &service.TestLinkRuleRequest{
		Pattern:       `price`,
		CaseSensitive: true,
		Message:       "PRICE",
	})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Matched)
	assert.Empty(suite.T(), resp.Matches)
}

func (suite *LinkRuleServiceTestSuite) publicWidget() *models.Widget {
	return &models.Widget{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		PublicKey:      "wgt_public",
		AllowedOrigins: json.RawMessage(`["https://acme.io"]`),
		IsActive:       true,
		Organization:   &models.Organization{Status: models.OrganizationStatusActive},
	}
}

// TestScan tests message scanning through a public widget
func (suite *LinkRuleServiceTestSuite) TestScan() {
	w := suite.publicWidget()
	cards := []linkrules.Card{{Title: "See our plans", URL: "https://acme.io/pricing"}}
	suite.mockWidgets.EXPECT().GetByPublicKey("wgt_public").Return(w, nil)
	suite.mockMatcher.EXPECT().Match(suite.orgID, w.ID, "how much does it cost").Return(cards, nil)

	resp, err := suite.service.Scan(context.Background(), "wgt_public", "https://acme.io", "  how much does it cost  ")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), cards, resp.Cards)
}

// TestScanTruncatesOnRuneBoundary tests that long messages are cut without splitting a character
func (suite *LinkRuleServiceTestSuite) TestScanTruncatesOnRuneBoundary() {
	w := suite.publicWidget()
	prefix := strings.Repeat("a", 3999)
	suite.mockWidgets.EXPECT().GetByPublicKey("wgt_public").Return(w, nil)
	suite.mockMatcher.EXPECT().Match(suite.orgID, w.ID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, message string) ([]linkrules.Card, error) {
			assert.True(suite.T(), utf8.ValidString(message))
			assert.Equal(suite.T(), prefix, message)
			return nil, nil
		})

	_, err := suite.service.Scan(context.Background(), "wgt_public", "https://acme.io", prefix+"é and more")
	require.NoError(suite.T(), err)
}

// TestScanOriginRejected tests that scans from foreign sites are refused
func (suite *LinkRuleServiceTestSuite) TestScanOriginRejected() {
	suite.mockWidgets.EXPECT().GetByPublicKey("wgt_public").Return(suite.publicWidget(), nil)

	_, err := suite.service.Scan(context.Background(), "wgt_public", "https://evil.example", "hi")
	assert.ErrorIs(suite.T(), err, apperrors.ErrOriginNotAllowed)
}

// TestScanInactiveWidget tests that disabled widgets look missing
func (suite *LinkRuleServiceTestSuite) TestScanInactiveWidget() {
	w := suite.publicWidget()
	w.IsActive = false
	suite.mockWidgets.EXPECT().GetByPublicKey("wgt_public").Return(w, nil)

	_, err := suite.service.Scan(context.Background(), "wgt_public", "", "hi")
	assert.ErrorIs(suite.T(), err, apperrors.ErrWidgetNotFound)
}

// TestScanEmptyMessage tests that blank messages are rejected
func (suite *LinkRuleServiceTestSuite) TestScanEmptyMessage() {
	_, err := suite.service.Scan(context.Background(), "wgt_public", "", "   ")
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestLinkRuleServiceTestSuite runs the test suite
func TestLinkRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LinkRuleServiceTestSuite))
}
