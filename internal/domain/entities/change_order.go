package entities

import (
	"errors"
	"time"
)

// ChangeOrderType selects which cost calculator runs for a change order.

type ChangeOrderType string

const (
	ChangeOrderTypeTimeline  ChangeOrderType = "timeline"
	ChangeOrderTypeScope     ChangeOrderType = "scope"
	ChangeOrderTypeLocation  ChangeOrderType = "location"
	ChangeOrderTypeEquipment ChangeOrderType = "equipment"
	ChangeOrderTypePersonnel ChangeOrderType = "personnel"
	ChangeOrderTypeTravel    ChangeOrderType = "travel"
)

// ChangeOrderStatus represents the change-order lifecycle.
//
// Domain notes:
//   - pending is the initial state and stays set while a deposit is outstanding.
//   - approved is reached only through the auto-approve path.
//   - rejected is set by manual rejection.
//   - invoiced is a valid value the surrounding system may set; the cost engine
//     itself moves pending -> paid on webhook confirmation.

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
	ChangeOrderStatusInvoiced ChangeOrderStatus = "invoiced"
	ChangeOrderStatusPaid     ChangeOrderStatus = "paid"
)

// RequestedBy identifies who asked for the change.

type RequestedBy string

const (
	RequestedByClient       RequestedBy = "client"
	RequestedByPhotographer RequestedBy = "photographer"
	RequestedByVendor       RequestedBy = "vendor"
)

var ErrInvalidChangePayload = errors.New("invalid change-order payload for declared type")

// TimelineChange carries the original and requested shoot start times.
type TimelineChange struct {
	OriginalStart time.Time `json:"original_start"`
	NewStart      time.Time `json:"new_start"`
}

// LocationChange carries the original and requested shoot locations.
type LocationChange struct {
	OriginalLocation string `json:"original_location"`
	NewLocation      string `json:"new_location"`
}

// EquipmentChange lists equipment identifiers being added to the job.
type EquipmentChange struct {
	AddedEquipment []string `json:"added_equipment"`
}

// PersonnelChange lists crew roles being added. Pricing bills a full day
// regardless of headcount.
type PersonnelChange struct {
	AddedRoles []string `json:"added_roles"`
}

// TravelChange describes extra travel: either a multi-day destination trip or
// plain mileage.
type TravelChange struct {
	IsDestination   bool    `json:"is_destination"`
	DestinationDays int     `json:"destination_days"`
	DistanceMiles   float64 `json:"distance_miles"`
}

// ScopeChange describes extra deliverables/coverage with an optional hour
// estimate from the requester.
type ScopeChange struct {
	EstimatedHours   float64 `json:"estimated_hours"`
	ScopeDescription string  `json:"scope_description"`
}

// ChangeDetails is the typed per-category payload of a change order. Exactly
// one field must be set and it must match the declared ChangeOrderType.
//
// The one-struct-per-category shape replaces an open-ended "any" payload so
// calculators never see a value whose shape mismatches the declared type.
type ChangeDetails struct {
	Timeline  *TimelineChange  `json:"timeline,omitempty"`
	Location  *LocationChange  `json:"location,omitempty"`
	Equipment *EquipmentChange `json:"equipment,omitempty"`
	Personnel *PersonnelChange `json:"personnel,omitempty"`
	Travel    *TravelChange    `json:"travel,omitempty"`
	Scope     *ScopeChange     `json:"scope,omitempty"`
}

// Validate checks that the payload variant matching t is populated and sane.
func (d ChangeDetails) Validate(t ChangeOrderType) error {
	switch t {
	case ChangeOrderTypeTimeline:
		if d.Timeline == nil || d.Timeline.OriginalStart.IsZero() || d.Timeline.NewStart.IsZero() {
			return ErrInvalidChangePayload
		}
	case ChangeOrderTypeLocation:
		if d.Location == nil || d.Location.OriginalLocation == "" || d.Location.NewLocation == "" {
			return ErrInvalidChangePayload
		}
	case ChangeOrderTypeEquipment:
		if d.Equipment == nil || len(d.Equipment.AddedEquipment) == 0 {
			return ErrInvalidChangePayload
		}
	case ChangeOrderTypePersonnel:
		if d.Personnel == nil || len(d.Personnel.AddedRoles) == 0 {
			return ErrInvalidChangePayload
		}
	case ChangeOrderTypeTravel:
		if d.Travel == nil {
			return ErrInvalidChangePayload
		}
		if d.Travel.IsDestination && d.Travel.DestinationDays <= 0 {
			return ErrInvalidChangePayload
		}
		if !d.Travel.IsDestination && d.Travel.DistanceMiles <= 0 {
			return ErrInvalidChangePayload
		}
	case ChangeOrderTypeScope:
		if d.Scope == nil {
			return ErrInvalidChangePayload
		}
	default:
		return ErrInvalidChangePayload
	}
	return nil
}

// ChangeOrder is a requested modification to a booked job.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle invariant: CostImpact is set before Status moves away from pending,
// and MicroDepositID is set exactly when a deposit record exists for the order
// (auto-approved orders get an already-completed zero-amount deposit).

type ChangeOrder struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	ClientID    string            `json:"client_id"`
	Type        ChangeOrderType   `json:"type"`
	Description string            `json:"description"`
	Details     ChangeDetails     `json:"details"`
	RequestedBy RequestedBy       `json:"requested_by"`
	RequestedAt time.Time         `json:"requested_at"`
	Status      ChangeOrderStatus `json:"status"`

	CostImpact     *CostImpact `json:"cost_impact,omitempty"`
	MicroDepositID string      `json:"micro_deposit_id,omitempty"`

	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}
