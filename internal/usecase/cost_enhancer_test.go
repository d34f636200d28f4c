package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"
	mock_interfaces "aperture_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func baseImpact() entities.CostImpact {
	return entities.CostImpact{
		AdditionalHours: 2,
		HourlyRate:      150,
		TotalAmount:     300,
		Breakdown: []entities.CostBreakdown{
			{Category: entities.BreakdownCategoryTime, Description: "Rescheduled shoot", Quantity: 2, UnitCost: 150, TotalCost: 300},
		},
		Confidence: 0.9,
	}
}

func TestCostEnhancer_Enhance(t *testing.T) {
	order := entities.ChangeOrder{ID: "co-1", Type: entities.ChangeOrderTypeTimeline}

	t.Run("nil advisory is a passthrough", func(t *testing.T) {
		e := NewCostEnhancer(nil)
		got := e.Enhance(context.Background(), order, baseImpact())
		if !reflect.DeepEqual(got, baseImpact()) {
			t.Fatalf("expected unchanged impact, got %+v", got)
		}
	})

	t.Run("advisory error falls back to input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		advisor := mock_interfaces.NewMockIAdvisoryService(ctrl)
		advisor.EXPECT().EnhanceEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.AdvisoryAdjustment{}, errors.New("timeout"))

		e := NewCostEnhancer(advisor)
		got := e.Enhance(context.Background(), order, baseImpact())

		if !reflect.DeepEqual(got, baseImpact()) {
			t.Fatalf("expected unchanged impact after advisory failure, got %+v", got)
		}
	})

	t.Run("full adjustment applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		advisor := mock_interfaces.NewMockIAdvisoryService(ctrl)

		adjusted := 425.0
		confidence := 0.75
		advisor.EXPECT().EnhanceEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.AdvisoryAdjustment{
				AdjustedTotal:   &adjusted,
				ConfidenceScore: &confidence,
				HiddenCosts: []interfaces.HiddenCost{
					{Category: "vendor", Description: "Venue rebooking fee", Amount: 125, Justification: "Venue charges for date changes"},
				},
			}, nil)

		e := NewCostEnhancer(advisor)
		got := e.Enhance(context.Background(), order, baseImpact())

		if got.TotalAmount != 425 {
			t.Fatalf("expected adjusted total 425, got %v", got.TotalAmount)
		}
		if got.Confidence != 0.75 {
			t.Fatalf("expected confidence 0.75, got %v", got.Confidence)
		}
		if len(got.Breakdown) != 2 {
			t.Fatalf("expected appended breakdown line, got %d lines", len(got.Breakdown))
		}
		last := got.Breakdown[1]
		if last.Category != entities.BreakdownCategoryVendor || last.TotalCost != 125 {
			t.Fatalf("unexpected hidden cost line %+v", last)
		}
	})

	t.Run("missing fields keep computed values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		advisor := mock_interfaces.NewMockIAdvisoryService(ctrl)
		advisor.EXPECT().EnhanceEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.AdvisoryAdjustment{AdjustmentReason: "looks right"}, nil)

		e := NewCostEnhancer(advisor)
		got := e.Enhance(context.Background(), order, baseImpact())

		if !reflect.DeepEqual(got, baseImpact()) {
			t.Fatalf("expected no silent zeroing, got %+v", got)
		}
	})

	t.Run("unknown hidden cost category maps to overhead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		advisor := mock_interfaces.NewMockIAdvisoryService(ctrl)
		advisor.EXPECT().EnhanceEstimate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.AdvisoryAdjustment{
				HiddenCosts: []interfaces.HiddenCost{{Category: "misc", Description: "Parking", Amount: 20}},
			}, nil)

		e := NewCostEnhancer(advisor)
		got := e.Enhance(context.Background(), order, baseImpact())

		if got.Breakdown[1].Category != entities.BreakdownCategoryOverhead {
			t.Fatalf("expected overhead category, got %s", got.Breakdown[1].Category)
		}
	})
}
