package service_test

import (
	"errors"
	"testing"
	"time"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BillingServiceTestSuite defines the test suite for BillingService
type BillingServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockSubs *mocks.MockSubscriptionRepositoryInterface
	service  *service.BillingService
}

// SetupTest sets up the test suite
func (suite *BillingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSubs = mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl)
	suite.service = service.NewBillingService(suite.mockSubs, testPrices(suite.T()))
	suite.service.SetClock(func() time.Time { return fixedNow })
}

// TearDownTest cleans up after each test
func (suite *BillingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}

func daysAgoPtr(n int) *time.Time {
	t := daysAgo(n)
	return &t
}

// TestKPIs tests MRR, ARR, ARPA, churn and the per-plan breakdown
func (suite *BillingServiceTestSuite) TestKPIs() {
	subs := []models.Subscription{
		{Plan: models.PlanFree, Status: models.SubscriptionStatusActive, Amount: decimal.Zero, Interval: models.BillingIntervalMonth, StartedAt: daysAgo(60)},
		{Plan: models.PlanStarter, Status: models.SubscriptionStatusActive, Amount: decimal.NewFromInt(29), Interval: models.BillingIntervalMonth, StartedAt: daysAgo(90)},
		{Plan: models.PlanPro, Status: models.SubscriptionStatusActive, Amount: decimal.NewFromInt(1188), Interval: models.BillingIntervalYear, StartedAt: daysAgo(10)},
		{Plan: models.PlanPro, Status: models.SubscriptionStatusCanceled, Amount: decimal.NewFromInt(99), Interval: models.BillingIntervalMonth, StartedAt: daysAgo(100), CanceledAt: daysAgoPtr(5)},
		{Plan: models.PlanEnterprise, Status: models.SubscriptionStatusTrialing, Amount: decimal.NewFromInt(499), Interval: models.BillingIntervalMonth, StartedAt: daysAgo(2)},
		{Plan: models.PlanStarter, Status: models.SubscriptionStatusPastDue, Amount: decimal.NewFromInt(29), Interval: models.BillingIntervalMonth, StartedAt: daysAgo(200)},
		{Plan: models.PlanStarter, Status: models.SubscriptionStatusCanceled, Amount: decimal.NewFromInt(29), Interval: models.BillingIntervalMonth, StartedAt: daysAgo(300), CanceledAt: daysAgoPtr(40)},
	}
	suite.mockSubs.EXPECT().GetAll().Return(subs, nil)

	kpis, err := suite.service.KPIs()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "USD", kpis.Currency)
	assert.Equal(suite.T(), "128.00", kpis.MRR)
	assert.Equal(suite.T(), "1536.00", kpis.ARR)
	assert.Equal(suite.T(), "64.00", kpis.ARPA)
	assert.Equal(suite.T(), 3, kpis.ActiveSubscriptions)
	assert.Equal(suite.T(), 1, kpis.TrialingSubscriptions)
	assert.Equal(suite.T(), 1, kpis.PastDueSubscriptions)
	assert.Equal(suite.T(), 2, kpis.PayingOrganizations)
	assert.Equal(suite.T(), 1, kpis.ChurnedLast30d)
	assert.Equal(suite.T(), "0.2500", kpis.ChurnRate)
	assert.Equal(suite.T(), fixedNow.Format(time.RFC3339), kpis.GeneratedAt)

	assert.Equal(suite.T(), []service.PlanKPI{
		{Plan: "free", Subscriptions: 1, MRR: "0.00"},
		{Plan: "starter", Subscriptions: 1, MRR: "29.00"},
		{Plan: "pro", Subscriptions: 1, MRR: "99.00"},
		{Plan: "enterprise", Subscriptions: 0, MRR: "0.00"},
	}, kpis.PlanBreakdown)
}

// TestKPIsEmpty tests that an empty platform yields zeroes rather than division errors
func (suite *BillingServiceTestSuite) TestKPIsEmpty() {
	suite.mockSubs.EXPECT().GetAll().Return(nil, nil)

	kpis, err := suite.service.KPIs()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "0.00", kpis.MRR)
	assert.Equal(suite.T(), "0.00", kpis.ARPA)
	assert.Equal(suite.T(), "0.0000", kpis.ChurnRate)
	assert.Len(suite.T(), kpis.PlanBreakdown, 4)
}

// TestKPIsRepositoryError tests error propagation
func (suite *BillingServiceTestSuite) TestKPIsRepositoryError() {
	suite.mockSubs.EXPECT().GetAll().Return(nil, errors.New("db down"))

	_, err := suite.service.KPIs()
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to load subscriptions")
}

// TestBillingServiceTestSuite runs the test suite
func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func TestParsePlanPrices(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		prices, err := service.ParsePlanPrices("eur", map[string]string{"Starter": " 19.5 "})
		require.NoError(t, err)
		assert.Equal(t, "EUR", prices.Currency())
		assert.Equal(t, "19.5", prices.Amount(models.PlanStarter, models.BillingIntervalMonth).String())
		assert.Equal(t, "234", prices.Amount(models.PlanStarter, models.BillingIntervalYear).String())
		assert.True(t, prices.Amount(models.PlanPro, models.BillingIntervalMonth).IsZero())
	})

	t.Run("default currency", func(t *testing.T) {
		prices, err := service.ParsePlanPrices("", nil)
		require.NoError(t, err)
		assert.Equal(t, "USD", prices.Currency())
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := service.ParsePlanPrices("usd", map[string]string{"gold": "10"})
		assert.Error(t, err)
	})

	t.Run("bad amount", func(t *testing.T) {
		_, err := service.ParsePlanPrices("usd", map[string]string{"pro": "ten"})
		assert.Error(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := service.ParsePlanPrices("usd", map[string]string{"pro": "-1"})
		assert.Error(t, err)
	})
}
