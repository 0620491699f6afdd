// Package advisory defines the contract with the advice collaborator and
// ships a deterministic rule-based implementation. Advisory output is
// read-only for the ledger: the only path from advice back into state is a
// receipt converted into a regular validated transaction draft.
package advisory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "artha/internal/errors"
	"artha/internal/models"
)

// BillItem is one line of an analyzed receipt.
type BillItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// BillAnalysis is the structured result of classifying a receipt.
type BillAnalysis struct {
	Merchant string          `json:"merchant"`
	Total    decimal.Decimal `json:"total"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
	Items    []BillItem      `json:"items"`
}

// PurchaseImpact scores a prospective purchase across four dimensions,
// each in [0,100], with a verdict and a cheaper alternative.
type PurchaseImpact struct {
	HealthScore           int    `json:"health_score"`
	SocialScore           int    `json:"social_score"`
	UtilityScore          int    `json:"utility_score"`
	SustainabilityScore   int    `json:"sustainability_score"`
	Verdict               string `json:"verdict"`
	AlternativeSuggestion string `json:"alternative_suggestion"`
}

// Message is one turn of an advice conversation.
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Service is the advice collaborator contract. Implementations must be
// read-only with respect to the ledger.
type Service interface {
	AdviseOnSpending(ctx context.Context, category string, amount decimal.Decimal) (string, error)
	ScorePurchaseImpact(ctx context.Context, item string, price, monthlyIncome decimal.Decimal) (*PurchaseImpact, error)
	Chat(ctx context.Context, history []Message, query, persona string) (string, error)
	ClassifyReceipt(ctx context.Context, image []byte) (*BillAnalysis, error)
}

// RuleBased is a deterministic advisor: same inputs, same advice. It covers
// the advisory contract without a hosted model, which keeps the core
// testable and the service runnable offline.
type RuleBased struct{}

// NewRuleBased creates a rule-based advisor.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

var spendingAdvice = map[string]string{
	models.CategoryFood:          "Meals add up quietly. Batch-cook twice a week and keep restaurant spends for occasions.",
	models.CategoryTransport:     "Compare this against a monthly pass; daily cabs are usually the most expensive commute.",
	models.CategoryShopping:      "Apply the 72-hour rule before any repeat purchase in this category.",
	models.CategoryBills:         "Fixed obligations deserve an annual renegotiation. Check for unused subscriptions.",
	models.CategoryEntertainment: "Entertainment is fine when budgeted first, not left over. Cap it at a fixed share of income.",
	models.CategoryEducation:     "Spending on skills compounds like an asset. This is the one category to protect.",
	models.CategoryHealth:        "Preventive spending here is cheaper than the alternative. Keep it.",
}

// AdviseOnSpending returns a short spending insight for a category and
// amount.
func (a *RuleBased) AdviseOnSpending(_ context.Context, category string, amount decimal.Decimal) (string, error) {
	advice, ok := spendingAdvice[category]
	if !ok {
		advice = "Track this category for a full month before judging it; patterns beat single data points."
	}
	return fmt.Sprintf("%s spent on %s. %s", amount.StringFixed(2), category, advice), nil
}

// ScorePurchaseImpact rates a purchase against the buyer's income. The
// heuristic is intentionally simple: the larger the price relative to
// monthly income, the harsher the utility verdict.
func (a *RuleBased) ScorePurchaseImpact(_ context.Context, item string, price, monthlyIncome decimal.Decimal) (*PurchaseImpact, error) {
	// Price as a percentage of monthly income; 100 when income is unknown.
	burden := 100.0
	if monthlyIncome.IsPositive() {
		burden = price.Div(monthlyIncome).InexactFloat64() * 100
	}

	utility := clampScore(100 - int(burden))
	impact := &PurchaseImpact{
		HealthScore:         60,
		SocialScore:         55,
		UtilityScore:        utility,
		SustainabilityScore: clampScore(90 - int(burden)/2),
	}

	switch {
	case burden <= 10:
		impact.Verdict = fmt.Sprintf("%s fits comfortably within a month's income.", item)
		impact.AlternativeSuggestion = "No cheaper alternative needed; buy it outright rather than on credit."
	case burden <= 50:
		impact.Verdict = fmt.Sprintf("%s is a meaningful dent in a month's income; plan for it.", item)
		impact.AlternativeSuggestion = "Set aside the amount over two months instead of buying today."
	default:
		impact.Verdict = fmt.Sprintf("%s costs more than half a month's income; this is a liability-shaped purchase.", item)
		impact.AlternativeSuggestion = "Look for a previous-generation or refurbished version at half the price."
	}
	return impact, nil
}

// Chat answers a query deterministically in the requested persona. This is
// a placeholder for a hosted model; natural-language generation is outside
// the ledger core.
func (a *RuleBased) Chat(_ context.Context, history []Message, query, persona string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "query is required")
	}
	if persona == "" {
		persona = "Acharya"
	}
	return fmt.Sprintf(
		"%s says: discipline first. Regarding %q — spend on needs, invest the surplus, and revisit this question after your emergency fund holds six months of expenses. (%d earlier turns considered)",
		persona, query, len(history),
	), nil
}

// ClassifyReceipt requires an image-understanding collaborator, which this
// implementation does not have.
func (a *RuleBased) ClassifyReceipt(_ context.Context, _ []byte) (*BillAnalysis, error) {
	return nil, apperrors.WithMessage(apperrors.ErrAdvisoryUnavailable, "receipt classification requires the hosted advisory collaborator")
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
