package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"aperture_studio/internal/domain/entities"
)

// CostCalculator turns a ChangeOrder into a CostImpact using the studio rate
// card. Deterministic: the only external-looking step (distance between two
// locations) is a tiered heuristic, not a live lookup.

type CostCalculator struct {
	rules *entities.PricingRules
}

func NewCostCalculator(rules *entities.PricingRules) *CostCalculator {
	return &CostCalculator{rules: rules}
}

// Calculate dispatches on the change-order type. Unrecognized types get a
// defensive fallback of one hour at base rate; the type enum is exhaustive so
// this path is not reachable from validated orders.
func (c *CostCalculator) Calculate(o entities.ChangeOrder) entities.CostImpact {
	switch o.Type {
	case entities.ChangeOrderTypeTimeline:
		return c.calculateTimeline(o)
	case entities.ChangeOrderTypeLocation:
		return c.calculateLocation(o)
	case entities.ChangeOrderTypeEquipment:
		return c.calculateEquipment(o)
	case entities.ChangeOrderTypePersonnel:
		return c.calculatePersonnel(o)
	case entities.ChangeOrderTypeTravel:
		return c.calculateTravel(o)
	case entities.ChangeOrderTypeScope:
		return c.calculateScope(o)
	default:
		return c.calculateDefault(o)
	}
}

// fixedHolidays is the studio's closed-rate calendar. Nov 28 approximates
// Thanksgiving; it is not the actual date every year.
var fixedHolidays = [][2]int{
	{int(time.January), 1},
	{int(time.July), 4},
	{int(time.November), 28},
	{int(time.December), 25},
}

func isHoliday(t time.Time) bool {
	for _, h := range fixedHolidays {
		if int(t.Month()) == h[0] && t.Day() == h[1] {
			return true
		}
	}
	return false
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (c *CostCalculator) calculateTimeline(o entities.ChangeOrder) entities.CostImpact {
	tl := o.Details.Timeline

	hours := math.Abs(tl.NewStart.Sub(tl.OriginalStart).Hours())
	// A time change always bills at least one hour, even for a one-minute shift.
	billable := math.Max(hours, 1)

	rate := c.rules.BaseHourlyRate
	justification := "Schedule adjustment at standard rate"
	// Holiday takes priority over weekend.
	if isHoliday(tl.NewStart) {
		rate = c.rules.BaseHourlyRate * c.rules.HolidayMultiplier
		justification = "Schedule adjustment at holiday rate"
	} else if isWeekend(tl.NewStart) {
		rate = c.rules.BaseHourlyRate * c.rules.WeekendMultiplier
		justification = "Schedule adjustment at weekend rate"
	}

	total := math.Max(billable*rate, c.rules.MinimumCharges.TimeChange)
	return entities.CostImpact{
		AdditionalHours: billable,
		HourlyRate:      rate,
		TotalAmount:     total,
		Breakdown: []entities.CostBreakdown{
			{
				Category:      entities.BreakdownCategoryTime,
				Description:   fmt.Sprintf("Rescheduled shoot to %s", tl.NewStart.Format("Mon Jan 2 3:04 PM")),
				Quantity:      billable,
				UnitCost:      rate,
				TotalCost:     total,
				Justification: justification,
			},
		},
		Confidence: 0.9,
	}
}

// estimateDistanceMiles is the in-core stand-in for a real mileage lookup:
// addresses sharing a city segment are treated as a 15-mile local move,
// anything else as a 45-mile nearby-city default.
func estimateDistanceMiles(from, to string) float64 {
	if sameCity(from, to) {
		return 15
	}
	return 45
}

func sameCity(a, b string) bool {
	cityA, cityB := cityPart(a), cityPart(b)
	if cityA == "" || cityB == "" {
		return false
	}
	return cityA == cityB
}

// cityPart pulls the city out of a "street, city, state" address: the
// second-to-last comma segment, or the whole string when unsegmented.
func cityPart(addr string) string {
	segs := strings.Split(strings.ToLower(addr), ",")
	for i := range segs {
		segs[i] = strings.TrimSpace(segs[i])
	}
	if len(segs) >= 2 {
		return segs[len(segs)-2]
	}
	return segs[0]
}

func (c *CostCalculator) calculateLocation(o entities.ChangeOrder) entities.CostImpact {
	loc := o.Details.Location

	distance := estimateDistanceMiles(loc.OriginalLocation, loc.NewLocation)
	travelCosts := distance * c.rules.LocalMileageRate

	// One flat hour at base rate for on-site setup and scouting.
	setupHours := 1.0
	setupCost := setupHours * c.rules.BaseHourlyRate

	total := math.Max(travelCosts+setupCost, c.rules.MinimumCharges.LocationChange)
	return entities.CostImpact{
		AdditionalHours: setupHours,
		HourlyRate:      c.rules.BaseHourlyRate,
		TravelCosts:     travelCosts,
		TotalAmount:     total,
		Breakdown: []entities.CostBreakdown{
			{
				Category:      entities.BreakdownCategoryTravel,
				Description:   fmt.Sprintf("Travel to %s", loc.NewLocation),
				Quantity:      distance,
				UnitCost:      c.rules.LocalMileageRate,
				TotalCost:     travelCosts,
				Justification: "Estimated mileage between locations",
			},
			{
				Category:      entities.BreakdownCategoryTime,
				Description:   "On-site setup and scouting",
				Quantity:      setupHours,
				UnitCost:      c.rules.BaseHourlyRate,
				TotalCost:     setupCost,
				Justification: "New location requires setup time",
			},
		},
		Confidence: 0.8,
	}
}

func (c *CostCalculator) calculateEquipment(o entities.ChangeOrder) entities.CostImpact {
	eq := o.Details.Equipment

	var equipmentCosts float64
	breakdown := make([]entities.CostBreakdown, 0, len(eq.AddedEquipment))
	for _, item := range eq.AddedEquipment {
		rate, ok := c.rules.EquipmentRates[item]
		if !ok {
			rate = c.rules.DefaultEquipmentRate
		}
		equipmentCosts += rate
		breakdown = append(breakdown, entities.CostBreakdown{
			Category:      entities.BreakdownCategoryEquipment,
			Description:   fmt.Sprintf("Day rental: %s", item),
			Quantity:      1,
			UnitCost:      rate,
			TotalCost:     rate,
			Justification: "Standard day rate",
		})
	}

	total := math.Max(equipmentCosts, c.rules.MinimumCharges.EquipmentAdd)
	return entities.CostImpact{
		EquipmentCosts: equipmentCosts,
		TotalAmount:    total,
		Breakdown:      breakdown,
		Confidence:     0.95,
	}
}

func (c *CostCalculator) calculatePersonnel(o entities.ChangeOrder) entities.CostImpact {
	// A full day is billed regardless of how many people are added.
	hours := c.rules.PersonnelDayHours
	total := hours * c.rules.BaseHourlyRate
	return entities.CostImpact{
		AdditionalHours: hours,
		HourlyRate:      c.rules.BaseHourlyRate,
		TotalAmount:     total,
		Breakdown: []entities.CostBreakdown{
			{
				Category:      entities.BreakdownCategoryTime,
				Description:   fmt.Sprintf("Additional crew: %s", strings.Join(o.Details.Personnel.AddedRoles, ", ")),
				Quantity:      hours,
				UnitCost:      c.rules.BaseHourlyRate,
				TotalCost:     total,
				Justification: "Full-day crew booking",
			},
		},
		Confidence: 0.9,
	}
}

func (c *CostCalculator) calculateTravel(o entities.ChangeOrder) entities.CostImpact {
	tr := o.Details.Travel

	var travelCosts float64
	var line entities.CostBreakdown
	if tr.IsDestination {
		days := float64(tr.DestinationDays)
		travelCosts = days * c.rules.DestinationDayRate
		line = entities.CostBreakdown{
			Category:      entities.BreakdownCategoryTravel,
			Description:   fmt.Sprintf("Destination coverage, %d day(s)", tr.DestinationDays),
			Quantity:      days,
			UnitCost:      c.rules.DestinationDayRate,
			TotalCost:     travelCosts,
			Justification: "Destination day rate",
		}
	} else {
		travelCosts = tr.DistanceMiles * c.rules.RegionalMileageRate
		line = entities.CostBreakdown{
			Category:      entities.BreakdownCategoryTravel,
			Description:   fmt.Sprintf("Regional travel, %.0f miles", tr.DistanceMiles),
			Quantity:      tr.DistanceMiles,
			UnitCost:      c.rules.RegionalMileageRate,
			TotalCost:     travelCosts,
			Justification: "Regional mileage rate",
		}
	}

	return entities.CostImpact{
		TravelCosts: travelCosts,
		TotalAmount: travelCosts,
		Breakdown:   []entities.CostBreakdown{line},
		Confidence:  0.85,
	}
}

func (c *CostCalculator) calculateScope(o entities.ChangeOrder) entities.CostImpact {
	sc := o.Details.Scope

	hours := sc.EstimatedHours
	if hours <= 0 {
		hours = c.rules.DefaultScopeHours
	}
	total := hours * c.rules.BaseHourlyRate
	desc := sc.ScopeDescription
	if desc == "" {
		desc = "Expanded coverage"
	}
	return entities.CostImpact{
		AdditionalHours: hours,
		HourlyRate:      c.rules.BaseHourlyRate,
		TotalAmount:     total,
		Breakdown: []entities.CostBreakdown{
			{
				Category:      entities.BreakdownCategoryTime,
				Description:   desc,
				Quantity:      hours,
				UnitCost:      c.rules.BaseHourlyRate,
				TotalCost:     total,
				Justification: "Estimated additional shooting/editing hours",
			},
		},
		Confidence: 0.7,
	}
}

func (c *CostCalculator) calculateDefault(o entities.ChangeOrder) entities.CostImpact {
	total := c.rules.BaseHourlyRate
	return entities.CostImpact{
		AdditionalHours: 1,
		HourlyRate:      c.rules.BaseHourlyRate,
		TotalAmount:     total,
		Breakdown: []entities.CostBreakdown{
			{
				Category:      entities.BreakdownCategoryOverhead,
				Description:   fmt.Sprintf("Unclassified change: %s", o.Description),
				Quantity:      1,
				UnitCost:      c.rules.BaseHourlyRate,
				TotalCost:     total,
				Justification: "Default single-hour estimate",
			},
		},
		Confidence: 0.5,
	}
}
