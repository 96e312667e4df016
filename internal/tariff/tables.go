package tariff

import "logistics-guide/backend/internal/catalog"

// SPPriceThreshold splits the SP first-mile fee in two tiers. Prices at the
// threshold pay the upper tier.
const SPPriceThreshold = 24990

const (
	spFirstMileLow  = 1000
	spFirstMileHigh = 2690
)

// firstMileFlat holds the per-order first-mile fee of every class except SP.
var firstMileFlat = map[catalog.SizeClass]int{
	catalog.SizeP1: 4590,
	catalog.SizeP2: 6690,
	catalog.SizeP3: 7790,
	catalog.SizeM:  8790,
	catalog.SizeG:  12990,
	catalog.SizeSG: 21490,
}

var reverseFees = map[catalog.SizeClass]int{
	catalog.SizeSP: 2800,
	catalog.SizeP1: 2800,
	catalog.SizeP2: 6000,
	catalog.SizeP3: 11000,
	catalog.SizeM:  20000,
	catalog.SizeG:  23900,
	catalog.SizeSG: 23900,
}

// ownFleetMetro is the Envíame last-mile tariff for Santiago.
var ownFleetMetro = map[catalog.SizeClass]int{
	catalog.SizeSP: 3200,
	catalog.SizeP1: 3200,
	catalog.SizeP2: 4990,
	catalog.SizeP3: 5990,
	catalog.SizeM:  5990,
	catalog.SizeG:  6990,
	catalog.SizeSG: 18740,
}

// Comparison pairs the platform's Santiago delivery fee with the going rate of
// external operators.
type Comparison struct {
	Platform int `json:"platform"`
	External int `json:"external"`
}

var crossdockMetro = map[catalog.SizeClass]Comparison{
	catalog.SizeSP:  {Platform: 3990, External: 3990},
	catalog.SizeXXS: {Platform: 4990, External: 7990},
	catalog.SizeXS:  {Platform: 9990, External: 14990},
	catalog.SizeS:   {Platform: 9990, External: 19990},
	catalog.SizeM1:  {Platform: 10990, External: 39990},
	catalog.SizeM2:  {Platform: 13990, External: 79990},
	catalog.SizeLXL: {Platform: 16990, External: 199990},
}

var fulfillmentStorage = []string{
	"XXXS: $0,3/día + $1.000 / $2.600 por venta",
	"S: $7/día + $4.500 por venta",
	"M1: $20/día + $6.800 por venta",
	"XXL: $260/día + $8.500 por venta",
	"XXXL: $400/día + $11.000 por venta",
}

// ReverseFee returns the return-processing fee of a class.
func ReverseFee(s catalog.SizeClass) (int, bool) {
	fee, ok := reverseFees[s]
	return fee, ok
}

// OwnFleetFee returns the Santiago own-fleet tariff of a class.
func OwnFleetFee(s catalog.SizeClass) (int, bool) {
	fee, ok := ownFleetMetro[s]
	return fee, ok
}

// CrossdockComparison returns the Santiago platform vs external fees of a class.
func CrossdockComparison(s catalog.SizeClass) (Comparison, bool) {
	c, ok := crossdockMetro[s]
	return c, ok
}

// FulfillmentStorage returns the storage and co-financing tiers, verbatim.
func FulfillmentStorage() []string {
	return append([]string(nil), fulfillmentStorage...)
}

// OwnFleetClasses lists the classes with a confirmed own-fleet tariff.
func OwnFleetClasses() []catalog.SizeClass {
	var out []catalog.SizeClass
	for _, s := range catalog.SizeClasses {
		if _, ok := ownFleetMetro[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
