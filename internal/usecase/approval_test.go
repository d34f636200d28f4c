package usecase

import (
	"strings"
	"testing"

	"aperture_studio/internal/domain/entities"
)

func impactWithTotal(total float64) entities.CostImpact {
	return entities.CostImpact{TotalAmount: total, Confidence: 0.9}
}

func TestDecideApproval(t *testing.T) {
	thresholds := entities.DefaultPricingRules().Thresholds

	t.Run("auto approve under threshold", func(t *testing.T) {
		d := DecideApproval(impactWithTotal(40), thresholds)

		if !d.Approved || d.RequiresDeposit {
			t.Fatalf("expected auto-approval, got %+v", d)
		}
		if d.DepositAmount != 0 {
			t.Fatalf("expected zero deposit, got %v", d.DepositAmount)
		}
		if !strings.Contains(d.Message, "auto-approved") || !strings.Contains(d.Message, "$50") {
			t.Fatalf("unexpected message %q", d.Message)
		}
	})

	t.Run("auto approve at threshold boundary", func(t *testing.T) {
		d := DecideApproval(impactWithTotal(50), thresholds)
		if !d.Approved {
			t.Fatalf("expected approval at boundary, got %+v", d)
		}
	})

	t.Run("middle band charges full total", func(t *testing.T) {
		d := DecideApproval(impactWithTotal(75), thresholds)

		if d.Approved || !d.RequiresDeposit {
			t.Fatalf("expected deposit required, got %+v", d)
		}
		if d.DepositAmount != 75 {
			t.Fatalf("expected full-total deposit 75, got %v", d.DepositAmount)
		}
	})

	t.Run("deposit band charges half rounded", func(t *testing.T) {
		d := DecideApproval(impactWithTotal(305), thresholds)

		if d.DepositAmount != 153 {
			t.Fatalf("expected rounded half deposit 153, got %v", d.DepositAmount)
		}
		if !strings.Contains(d.Message, "50%") {
			t.Fatalf("unexpected message %q", d.Message)
		}
	})

	t.Run("full payment above threshold", func(t *testing.T) {
		d := DecideApproval(impactWithTotal(600), thresholds)

		if d.DepositAmount != 600 {
			t.Fatalf("expected full payment 600, got %v", d.DepositAmount)
		}
		if !strings.Contains(d.Message, "full payment") {
			t.Fatalf("unexpected message %q", d.Message)
		}
	})
}

func TestDecideApproval_Monotonic(t *testing.T) {
	thresholds := entities.DefaultPricingRules().Thresholds

	// As totals grow the decision must move auto-approve -> deposit-required ->
	// full-payment, never backward.
	stage := func(total float64) int {
		d := DecideApproval(impactWithTotal(total), thresholds)
		switch {
		case d.Approved:
			return 0
		case total > thresholds.RequireFullPayment:
			return 2
		default:
			return 1
		}
	}

	prev := -1
	for _, total := range []float64{10, 49, 50, 51, 99, 100, 150, 400, 500, 501, 1000, 5000} {
		s := stage(total)
		if s < prev {
			t.Fatalf("decision regressed at total %v: stage %d after %d", total, s, prev)
		}
		prev = s
	}
}
