package entities

import (
	"errors"
	"testing"
	"time"
)

func TestChangeDetailsValidate(t *testing.T) {
	start := time.Date(2026, time.June, 9, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		typ     ChangeOrderType
		details ChangeDetails
		wantErr bool
	}{
		{
			name:    "timeline ok",
			typ:     ChangeOrderTypeTimeline,
			details: ChangeDetails{Timeline: &TimelineChange{OriginalStart: start, NewStart: start.Add(48 * time.Hour)}},
		},
		{
			name:    "timeline missing variant",
			typ:     ChangeOrderTypeTimeline,
			details: ChangeDetails{},
			wantErr: true,
		},
		{
			name:    "timeline zero new start",
			typ:     ChangeOrderTypeTimeline,
			details: ChangeDetails{Timeline: &TimelineChange{OriginalStart: start}},
			wantErr: true,
		},
		{
			name:    "location ok",
			typ:     ChangeOrderTypeLocation,
			details: ChangeDetails{Location: &LocationChange{OriginalLocation: "Austin, TX", NewLocation: "San Marcos, TX"}},
		},
		{
			name:    "location wrong variant set",
			typ:     ChangeOrderTypeLocation,
			details: ChangeDetails{Timeline: &TimelineChange{OriginalStart: start, NewStart: start}},
			wantErr: true,
		},
		{
			name:    "equipment empty list",
			typ:     ChangeOrderTypeEquipment,
			details: ChangeDetails{Equipment: &EquipmentChange{}},
			wantErr: true,
		},
		{
			name:    "personnel ok",
			typ:     ChangeOrderTypePersonnel,
			details: ChangeDetails{Personnel: &PersonnelChange{AddedRoles: []string{"second_shooter"}}},
		},
		{
			name:    "travel destination needs days",
			typ:     ChangeOrderTypeTravel,
			details: ChangeDetails{Travel: &TravelChange{IsDestination: true}},
			wantErr: true,
		},
		{
			name:    "travel mileage needs distance",
			typ:     ChangeOrderTypeTravel,
			details: ChangeDetails{Travel: &TravelChange{}},
			wantErr: true,
		},
		{
			name:    "travel mileage ok",
			typ:     ChangeOrderTypeTravel,
			details: ChangeDetails{Travel: &TravelChange{DistanceMiles: 80}},
		},
		{
			name:    "scope without estimate ok",
			typ:     ChangeOrderTypeScope,
			details: ChangeDetails{Scope: &ScopeChange{ScopeDescription: "Add a second ceremony"}},
		},
		{
			name:    "unknown type",
			typ:     ChangeOrderType("catering"),
			details: ChangeDetails{Scope: &ScopeChange{}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.details.Validate(tc.typ)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidChangePayload) {
					t.Fatalf("expected ErrInvalidChangePayload, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
