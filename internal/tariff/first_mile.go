package tariff

import (
	"fmt"

	"logistics-guide/backend/internal/catalog"
)

// Fee is a tariff outcome. Priced is false when no figure applies and Note
// carries the reason.
type Fee struct {
	Amount int
	Priced bool
	Note   string
}

// FirstMile computes the per-order first-mile fee. Fulfillment stock already
// sits in the distribution center, so it pays nothing.
func FirstMile(m catalog.Modality, s catalog.SizeClass, price float64) Fee {
	if m == catalog.Fulfillment {
		return Fee{Amount: 0, Priced: true, Note: "No aplica (stock en CD Ripley)."}
	}
	if s == catalog.SizeSP {
		if price < SPPriceThreshold {
			return Fee{Amount: spFirstMileLow, Priced: true, Note: "SP < " + CLP(SPPriceThreshold)}
		}
		return Fee{Amount: spFirstMileHigh, Priced: true, Note: "SP ≥ " + CLP(SPPriceThreshold)}
	}
	if fee, ok := firstMileFlat[s]; ok {
		return Fee{Amount: fee, Priced: true, Note: fmt.Sprintf("%s tarifa fija", s)}
	}
	return Fee{Note: fmt.Sprintf("%s sin tarifa de primera milla publicada", s)}
}

// FirstMileTable exposes the first-mile tariffs for listing. SP is reported
// with both tiers.
func FirstMileTable() map[string]int {
	out := map[string]int{
		"SP_lt_24990": spFirstMileLow,
		"SP_ge_24990": spFirstMileHigh,
	}
	for s, fee := range firstMileFlat {
		out[string(s)] = fee
	}
	return out
}
