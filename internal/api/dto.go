package api

import (
	"logistics-guide/backend/internal/catalog"
	"logistics-guide/backend/internal/guide"
	"logistics-guide/backend/internal/scoring"
	"logistics-guide/backend/internal/tariff"
)

// RecommendationRequest is the seller scenario as submitted by the form or
// as JSON. Checkbox fields default to false when absent.
type RecommendationRequest struct {
	SizeClass             string           `json:"size_class" form:"size_class" binding:"required"`
	Region                string           `json:"region" form:"region" binding:"required"`
	HasWarehouse          *bool            `json:"has_warehouse" form:"has_warehouse" binding:"required"`
	IsBulky               bool             `json:"is_bulky" form:"is_bulky"`
	HighTurnover          bool             `json:"high_turnover" form:"high_turnover"`
	DailyOrders           int              `json:"daily_orders" form:"daily_orders" binding:"gte=0"`
	ReferencePrice        float64          `json:"reference_price" form:"reference_price" binding:"gte=0"`
	WantsStorePickup      bool             `json:"wants_store_pickup" form:"wants_store_pickup"`
	WantsBrandControl     bool             `json:"wants_brand_control" form:"wants_brand_control"`
	NeedsNationalCoverage bool             `json:"needs_national_coverage" form:"needs_national_coverage"`
	Weights               *scoring.Weights `json:"weights,omitempty" form:"-"`
}

// Scenario converts the request into a catalog scenario. Field errors are
// keyed by the JSON field name.
func (r RecommendationRequest) Scenario() (catalog.Scenario, map[string]string) {
	fields := map[string]string{}

	size, err := catalog.ParseSizeClass(r.SizeClass)
	if err != nil {
		fields["size_class"] = err.Error()
	}
	region, err := catalog.ParseRegion(r.Region)
	if err != nil {
		fields["region"] = err.Error()
	}
	if r.HasWarehouse == nil {
		fields["has_warehouse"] = "is required"
	}
	if r.DailyOrders < 0 {
		fields["daily_orders"] = "must be greater than or equal to 0"
	}
	if r.ReferencePrice < 0 {
		fields["reference_price"] = "must be greater than or equal to 0"
	}
	if len(fields) > 0 {
		return catalog.Scenario{}, fields
	}

	return catalog.Scenario{
		SizeClass:             size,
		Region:                region,
		HasWarehouse:          *r.HasWarehouse,
		IsBulky:               r.IsBulky,
		HighTurnover:          r.HighTurnover,
		DailyOrders:           r.DailyOrders,
		ReferencePrice:        r.ReferencePrice,
		WantsStorePickup:      r.WantsStorePickup,
		WantsBrandControl:     r.WantsBrandControl,
		NeedsNationalCoverage: r.NeedsNationalCoverage,
	}, nil
}

// RecommendationResponse wraps a guide with the request id.
type RecommendationResponse struct {
	RequestID string `json:"request_id"`
	guide.Guide
}

// ConfigResponse describes the active scoring configuration and the form's
// allowed values.
type ConfigResponse struct {
	Preset      string          `json:"preset"`
	Presets     []string        `json:"presets"`
	Weights     scoring.Weights `json:"weights"`
	Notice      string          `json:"notice,omitempty"`
	SizeClasses []SizeClassDTO  `json:"size_classes"`
	Regions     []RegionDTO     `json:"regions"`
	Modalities  []ModalityDTO   `json:"modalities"`
}

// SizeClassDTO is one selectable size class.
type SizeClassDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// RegionDTO is one selectable region.
type RegionDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ModalityDTO names a modality.
type ModalityDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TariffsResponse lists the static reference tables.
type TariffsResponse struct {
	FirstMile          map[string]int               `json:"first_mile"`
	Reverse            map[string]int               `json:"reverse"`
	OwnFleetMetro      map[string]int               `json:"own_fleet_metro"`
	CrossdockMetro     map[string]tariff.Comparison `json:"crossdock_metro"`
	FulfillmentStorage []string                     `json:"fulfillment_storage"`
	SPPriceThreshold   int                          `json:"sp_price_threshold"`
}

func sizeClassDTOs() []SizeClassDTO {
	out := make([]SizeClassDTO, 0, len(catalog.SizeClasses))
	for _, s := range catalog.SizeClasses {
		out = append(out, SizeClassDTO{Code: string(s), Description: s.Description(), Category: s.Category().String()})
	}
	return out
}

func regionDTOs() []RegionDTO {
	out := make([]RegionDTO, 0, len(catalog.Regions))
	for _, r := range catalog.Regions {
		out = append(out, RegionDTO{Code: string(r), Label: r.Label()})
	}
	return out
}

func modalityDTOs() []ModalityDTO {
	out := make([]ModalityDTO, 0, len(catalog.Modalities))
	for _, m := range catalog.Modalities {
		out = append(out, ModalityDTO{Code: m.Code(), Name: m.Name(), Description: m.Description()})
	}
	return out
}

func tariffsResponse() TariffsResponse {
	resp := TariffsResponse{
		FirstMile:          tariff.FirstMileTable(),
		Reverse:            map[string]int{},
		OwnFleetMetro:      map[string]int{},
		CrossdockMetro:     map[string]tariff.Comparison{},
		FulfillmentStorage: tariff.FulfillmentStorage(),
		SPPriceThreshold:   tariff.SPPriceThreshold,
	}
	for _, s := range catalog.SizeClasses {
		if fee, ok := tariff.ReverseFee(s); ok {
			resp.Reverse[string(s)] = fee
		}
		if fee, ok := tariff.OwnFleetFee(s); ok {
			resp.OwnFleetMetro[string(s)] = fee
		}
		if cmp, ok := tariff.CrossdockComparison(s); ok {
			resp.CrossdockMetro[string(s)] = cmp
		}
	}
	return resp
}
