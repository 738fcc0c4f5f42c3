//go:build integration
// +build integration

package repository

import (
	"testing"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WidgetRepositoryTestSuite tests the widget and link rule repositories
type WidgetRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WidgetRepository
	rules         *LinkRuleRepository
	factories     *testutils.FactorySet
	org           *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *WidgetRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWidgetRepository(suite.baseTestSuite.DB)
	suite.rules = NewLinkRuleRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// SetupTest runs before each test
func (suite *WidgetRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org, _ = seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)
}

// TearDownTest runs after each test
func (suite *WidgetRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByPublicKey tests the lookup used by the public config endpoint
func (suite *WidgetRepositoryTestSuite) TestGetByPublicKey() {
	widget := suite.factories.Widget.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(widget))

	found, err := suite.repo.GetByPublicKey(widget.PublicKey)

	suite.NoError(err)
	suite.Equal(widget.ID, found.ID)
	suite.JSONEq(`["https://acme.test"]`, string(found.AllowedOrigins))
}

// TestDuplicateName tests that widget names are unique per organization
func (suite *WidgetRepositoryTestSuite) TestDuplicateName() {
	first := suite.factories.Widget.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.Widget.Create(suite.org.ID)
	second.Name = first.Name
	err := suite.repo.Create(second)

	suite.True(IsUniqueViolation(err))
}

// TestLinkRulesOrderAndActive tests evaluation order and the active filter
func (suite *WidgetRepositoryTestSuite) TestLinkRulesOrderAndActive() {
	low := suite.factories.LinkRule.Create(suite.org.ID, `pricing`)
	low.Priority = 50
	high := suite.factories.LinkRule.Create(suite.org.ID, `refund`)
	high.Priority = 10
	off := suite.factories.LinkRule.Create(suite.org.ID, `careers`)
	off.IsActive = false
	for _, r := range []*models.LinkRule{low, high, off} {
		suite.Require().NoError(suite.rules.Create(r))
	}

	active, err := suite.rules.GetActiveByOrganizationID(suite.org.ID)
	suite.NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal(high.ID, active[0].ID)
	suite.Equal(low.ID, active[1].ID)

	all, total, err := suite.rules.GetByOrganizationID(suite.org.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(all, 3)
}

// TestDeleteWidgetCascadesScopedRules tests that widget-scoped rules go with their widget
func (suite *WidgetRepositoryTestSuite) TestDeleteWidgetCascadesScopedRules() {
	widget := suite.factories.Widget.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(widget))
	rule := suite.factories.LinkRule.Create(suite.org.ID, `hello`)
	rule.WidgetID = &widget.ID
	suite.Require().NoError(suite.rules.Create(rule))

	suite.NoError(suite.repo.Delete(widget.ID))

	_, err := suite.rules.GetByID(rule.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestWidgetRepositoryTestSuite runs the test suite
func TestWidgetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WidgetRepositoryTestSuite))
}
