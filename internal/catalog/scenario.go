package catalog

// Scenario is the seller's operating profile as submitted through the form.
type Scenario struct {
	SizeClass             SizeClass
	Region                Region
	HasWarehouse          bool
	IsBulky               bool
	HighTurnover          bool
	DailyOrders           int
	ReferencePrice        float64
	WantsStorePickup      bool
	WantsBrandControl     bool
	NeedsNationalCoverage bool
}

// InMetro reports whether the seller operates from Santiago.
func (s Scenario) InMetro() bool { return s.Region == Metro }

// Category is the size bucket of the scenario's class.
func (s Scenario) Category() SizeCategory { return s.SizeClass.Category() }
