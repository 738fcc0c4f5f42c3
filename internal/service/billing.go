package service

import (
	"fmt"
	"strings"
	"time"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/repository"

	"github.com/shopspring/decimal"
)

const churnWindow = 30 * 24 * time.Hour

// PlanPrices holds monthly list prices per plan in one currency
type PlanPrices struct {
	currency string
	monthly  map[models.Plan]decimal.Decimal
}

// ParsePlanPrices builds a price table from decimal strings keyed by plan name
func ParsePlanPrices(currency string, raw map[string]string) (PlanPrices, error) {
	prices := PlanPrices{
		currency: strings.ToUpper(currency),
		monthly:  make(map[models.Plan]decimal.Decimal, len(raw)),
	}
	for name, value := range raw {
		plan := models.Plan(strings.ToLower(name))
		if !plan.IsValid() {
			return prices, fmt.Errorf("unknown plan %q in price table", name)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return prices, fmt.Errorf("invalid price for plan %s: %w", name, err)
		}
		if amount.IsNegative() {
			return prices, fmt.Errorf("price for plan %s must not be negative", name)
		}
		prices.monthly[plan] = amount
	}
	return prices, nil
}

// Currency returns the billing currency
func (p PlanPrices) Currency() string {
	if p.currency == "" {
		return "USD"
	}
	return p.currency
}

// Amount is the charge per interval for plan; yearly is twelve monthly charges
func (p PlanPrices) Amount(plan models.Plan, interval models.BillingInterval) decimal.Decimal {
	monthly := p.monthly[plan]
	if interval == models.BillingIntervalYear {
		return monthly.Mul(decimal.NewFromInt(12))
	}
	return monthly
}

// BillingService computes revenue KPIs from subscriptions
type BillingService struct {
	subscriptions repository.SubscriptionRepositoryInterface
	prices        PlanPrices
	now           func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(subscriptions repository.SubscriptionRepositoryInterface, prices PlanPrices) *BillingService {
	return &BillingService{subscriptions: subscriptions, prices: prices, now: time.Now}
}

// PlanKPI is the per-plan slice of the KPI report
type PlanKPI struct {
	Plan          string `json:"plan"`
	Subscriptions int    `json:"subscriptions"`
	MRR           string `json:"mrr"`
}

// BillingKPIResponse is the revenue report served to platform administrators
type BillingKPIResponse struct {
	Currency              string    `json:"currency"`
	MRR                   string    `json:"mrr"`
	ARR                   string    `json:"arr"`
	ARPA                  string    `json:"arpa"`
	ActiveSubscriptions   int       `json:"active_subscriptions"`
	TrialingSubscriptions int       `json:"trialing_subscriptions"`
	PastDueSubscriptions  int       `json:"past_due_subscriptions"`
	PayingOrganizations   int       `json:"paying_organizations"`
	ChurnedLast30d        int       `json:"churned_last_30d"`
	ChurnRate             string    `json:"churn_rate"`
	PlanBreakdown         []PlanKPI `json:"plan_breakdown"`
	GeneratedAt           string    `json:"generated_at"`
}

// KPIs aggregates MRR, ARR, ARPA and churn across all subscriptions
func (s *BillingService) KPIs() (*BillingKPIResponse, error) {
	subs, err := s.subscriptions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	return computeKPIs(subs, s.prices.Currency(), s.now().UTC()), nil
}

type planBucket struct {
	count int
	mrr   decimal.Decimal
}

func computeKPIs(subs []models.Subscription, currency string, now time.Time) *BillingKPIResponse {
	windowStart := now.Add(-churnWindow)

	mrr := decimal.Zero
	perPlan := map[models.Plan]*planBucket{}
	for _, plan := range models.AllPlans() {
		perPlan[plan] = &planBucket{mrr: decimal.Zero}
	}

	resp := &BillingKPIResponse{Currency: currency}
	activeAtStart := 0
	for i := range subs {
		sub := &subs[i]

		switch sub.Status {
		case models.SubscriptionStatusActive:
			monthly := sub.MonthlyAmount()
			resp.ActiveSubscriptions++
			mrr = mrr.Add(monthly)
			if monthly.IsPositive() {
				resp.PayingOrganizations++
			}
			if bucket, ok := perPlan[sub.Plan]; ok {
				bucket.count++
				bucket.mrr = bucket.mrr.Add(monthly)
			}
		case models.SubscriptionStatusTrialing:
			resp.TrialingSubscriptions++
		case models.SubscriptionStatusPastDue:
			resp.PastDueSubscriptions++
		}

		if !sub.StartedAt.After(windowStart) && (sub.CanceledAt == nil || sub.CanceledAt.After(windowStart)) {
			activeAtStart++
		}
		if sub.Status == models.SubscriptionStatusCanceled && sub.CanceledAt != nil &&
			sub.CanceledAt.After(windowStart) && !sub.CanceledAt.After(now) {
			resp.ChurnedLast30d++
		}
	}

	resp.MRR = mrr.StringFixed(2)
	resp.ARR = mrr.Mul(decimal.NewFromInt(12)).StringFixed(2)
	resp.ARPA = decimal.Zero.StringFixed(2)
	if resp.PayingOrganizations > 0 {
		resp.ARPA = mrr.Div(decimal.NewFromInt(int64(resp.PayingOrganizations))).StringFixed(2)
	}
	resp.ChurnRate = decimal.Zero.StringFixed(4)
	if activeAtStart > 0 {
		resp.ChurnRate = decimal.NewFromInt(int64(resp.ChurnedLast30d)).
			Div(decimal.NewFromInt(int64(activeAtStart))).StringFixed(4)
	}

	for _, plan := range models.AllPlans() {
		bucket := perPlan[plan]
		resp.PlanBreakdown = append(resp.PlanBreakdown, PlanKPI{
			Plan:          string(plan),
			Subscriptions: bucket.count,
			MRR:           bucket.mrr.StringFixed(2),
		})
	}
	resp.GeneratedAt = formatTime(now)
	return resp
}
