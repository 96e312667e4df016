package scoring

import "logistics-guide/backend/internal/catalog"

// Dimension is one of the four axes every modality is rated on.
type Dimension int

const (
	Cost Dimension = iota
	Speed
	Control
	Coverage
)

// Dimensions lists the axes in declaration order.
var Dimensions = []Dimension{Cost, Speed, Control, Coverage}

func (d Dimension) String() string {
	switch d {
	case Cost:
		return "cost"
	case Speed:
		return "speed"
	case Control:
		return "control"
	default:
		return "coverage"
	}
}

// Label is the display name used for strengths.
func (d Dimension) Label() string {
	switch d {
	case Cost:
		return "Costo"
	case Speed:
		return "Velocidad"
	case Control:
		return "Control"
	default:
		return "Cobertura"
	}
}

// Profile rates a modality on each dimension, 0..1.
type Profile struct {
	Cost     float64 `json:"cost"`
	Speed    float64 `json:"speed"`
	Control  float64 `json:"control"`
	Coverage float64 `json:"coverage"`
}

// Get returns the component for d.
func (p Profile) Get(d Dimension) float64 {
	switch d {
	case Cost:
		return p.Cost
	case Speed:
		return p.Speed
	case Control:
		return p.Control
	default:
		return p.Coverage
	}
}

func (p *Profile) add(d Dimension, delta float64) {
	switch d {
	case Cost:
		p.Cost += delta
	case Speed:
		p.Speed += delta
	case Control:
		p.Control += delta
	default:
		p.Coverage += delta
	}
}

func (p Profile) clamped() Profile {
	return Profile{
		Cost:     clamp01(p.Cost),
		Speed:    clamp01(p.Speed),
		Control:  clamp01(p.Control),
		Coverage: clamp01(p.Coverage),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BaseProfile returns the unadjusted profile of a modality.
func BaseProfile(m catalog.Modality) Profile {
	return baseProfiles[m]
}

var baseProfiles = map[catalog.Modality]Profile{
	catalog.OperatorLogistics: {Cost: 0.6, Speed: 0.5, Control: 0.8, Coverage: 0.6},
	catalog.Crossdock:         {Cost: 0.8, Speed: 0.7, Control: 0.6, Coverage: 0.7},
	catalog.Fulfillment:       {Cost: 0.5, Speed: 0.9, Control: 0.4, Coverage: 0.8},
	catalog.OwnFleet:          {Cost: 0.6, Speed: 0.7, Control: 1.0, Coverage: 0.4},
}

type delta struct {
	modality  catalog.Modality
	dimension Dimension
	value     float64
}

// adjustment is a gated group of deltas.
type adjustment struct {
	name   string
	when   func(catalog.Scenario) bool
	deltas []delta
}

// adjustments are applied top to bottom; clamping happens once, after the last.
var adjustments = []adjustment{
	{
		name: "metro_medium_large_crossdock",
		when: func(s catalog.Scenario) bool {
			return s.InMetro() && s.Category() != catalog.Small
		},
		deltas: []delta{
			{catalog.Crossdock, Cost, 0.15},
			{catalog.Crossdock, Speed, 0.05},
		},
	},
	{
		name: "small_crossdock",
		when: func(s catalog.Scenario) bool { return s.Category() == catalog.Small },
		deltas: []delta{
			{catalog.Crossdock, Cost, -0.05},
		},
	},
	{
		name: "turnover_or_no_warehouse_fulfillment",
		when: func(s catalog.Scenario) bool { return s.HighTurnover || !s.HasWarehouse },
		deltas: []delta{
			{catalog.Fulfillment, Speed, 0.05},
			{catalog.Fulfillment, Coverage, 0.05},
			{catalog.Fulfillment, Cost, -0.05},
		},
	},
	{
		name: "brand_control_own_fleet",
		when: func(s catalog.Scenario) bool {
			return s.WantsBrandControl && s.InMetro() && s.DailyOrders >= 20
		},
		deltas: []delta{
			{catalog.OwnFleet, Control, 0.05},
			{catalog.OwnFleet, Speed, 0.05},
			{catalog.OwnFleet, Cost, 0.05},
		},
	},
	{
		name: "warehouse_small_medium_operator",
		when: func(s catalog.Scenario) bool {
			return s.HasWarehouse && s.Category() != catalog.Large
		},
		deltas: []delta{
			{catalog.OperatorLogistics, Control, 0.05},
			{catalog.OperatorLogistics, Cost, 0.05},
		},
	},
	{
		name: "national_coverage",
		when: func(s catalog.Scenario) bool { return s.NeedsNationalCoverage },
		deltas: []delta{
			{catalog.OwnFleet, Coverage, -0.10},
			{catalog.OperatorLogistics, Coverage, 0.05},
			{catalog.Fulfillment, Coverage, 0.05},
		},
	},
}

// Profiles returns the adjusted and clamped profile of every modality for s,
// together with the names of the adjustments that fired.
func Profiles(s catalog.Scenario) (map[catalog.Modality]Profile, []string) {
	profiles := make(map[catalog.Modality]Profile, len(baseProfiles))
	for m, p := range baseProfiles {
		profiles[m] = p
	}
	var applied []string
	for _, adj := range adjustments {
		if !adj.when(s) {
			continue
		}
		for _, d := range adj.deltas {
			p := profiles[d.modality]
			p.add(d.dimension, d.value)
			profiles[d.modality] = p
		}
		applied = append(applied, adj.name)
	}
	for m, p := range profiles {
		profiles[m] = p.clamped()
	}
	return profiles, applied
}
