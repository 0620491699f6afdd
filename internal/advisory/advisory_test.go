package advisory

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"artha/internal/models"
	"artha/internal/testutil"
)

func TestAdviseOnSpending(t *testing.T) {
	a := NewRuleBased()

	advice, err := a.AdviseOnSpending(context.Background(), models.CategoryFood, decimal.NewFromInt(1200))
	testutil.AssertNoError(t, err)
	if !strings.Contains(advice, "Food") {
		t.Errorf("advice should mention the category: %q", advice)
	}

	t.Run("unknown category still advises", func(t *testing.T) {
		advice, err := a.AdviseOnSpending(context.Background(), "Gadgets", decimal.NewFromInt(500))
		testutil.AssertNoError(t, err)
		if advice == "" {
			t.Error("expected advice for an unknown category")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, _ := a.AdviseOnSpending(context.Background(), models.CategoryBills, decimal.NewFromInt(999))
		second, _ := a.AdviseOnSpending(context.Background(), models.CategoryBills, decimal.NewFromInt(999))
		if first != second {
			t.Error("identical inputs must produce identical advice")
		}
	})
}

func TestScorePurchaseImpact(t *testing.T) {
	a := NewRuleBased()

	t.Run("cheap purchase scores high utility", func(t *testing.T) {
		impact, err := a.ScorePurchaseImpact(context.Background(), "Book", decimal.NewFromInt(500), decimal.NewFromInt(100000))
		testutil.AssertNoError(t, err)
		if impact.UtilityScore < 90 {
			t.Errorf("utility = %d, want >= 90 for a trivial spend", impact.UtilityScore)
		}
	})

	t.Run("expensive purchase flagged", func(t *testing.T) {
		impact, err := a.ScorePurchaseImpact(context.Background(), "PS5", decimal.NewFromInt(60000), decimal.NewFromInt(50000))
		testutil.AssertNoError(t, err)
		if impact.UtilityScore != 0 {
			t.Errorf("utility = %d, want clamp at 0 when price exceeds income", impact.UtilityScore)
		}
		if !strings.Contains(impact.Verdict, "liability") {
			t.Errorf("verdict should warn about the purchase: %q", impact.Verdict)
		}
	})

	t.Run("scores stay in range", func(t *testing.T) {
		impact, err := a.ScorePurchaseImpact(context.Background(), "Yacht", decimal.NewFromInt(10000000), decimal.Zero)
		testutil.AssertNoError(t, err)
		for name, score := range map[string]int{
			"health":         impact.HealthScore,
			"social":         impact.SocialScore,
			"utility":        impact.UtilityScore,
			"sustainability": impact.SustainabilityScore,
		} {
			if score < 0 || score > 100 {
				t.Errorf("%s score %d out of [0,100]", name, score)
			}
		}
	})
}

func TestChat(t *testing.T) {
	a := NewRuleBased()

	reply, err := a.Chat(context.Background(), nil, "Should I buy gold?", "")
	testutil.AssertNoError(t, err)
	if !strings.Contains(reply, "Acharya") {
		t.Errorf("default persona should be used: %q", reply)
	}

	_, err = a.Chat(context.Background(), nil, "   ", "Acharya")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestClassifyReceiptUnavailable(t *testing.T) {
	a := NewRuleBased()
	_, err := a.ClassifyReceipt(context.Background(), []byte{0xff})
	testutil.AssertAppError(t, err, "ADVISORY_UNAVAILABLE")
}
