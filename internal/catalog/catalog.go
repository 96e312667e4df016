package catalog

import (
	"fmt"

	"logistics-guide/backend/internal/match"
)

// SizeClass is the logistics class of the largest item in a purchase order.
// It covers both the tariff scheme (SP..SG) and the Santiago comparison
// scheme (SP, XXS..L/XL); tables keyed by it are partial.
type SizeClass string

const (
	SizeSP  SizeClass = "SP"
	SizeP1  SizeClass = "P1"
	SizeP2  SizeClass = "P2"
	SizeP3  SizeClass = "P3"
	SizeM   SizeClass = "M"
	SizeG   SizeClass = "G"
	SizeSG  SizeClass = "SG"
	SizeXXS SizeClass = "XXS"
	SizeXS  SizeClass = "XS"
	SizeS   SizeClass = "S"
	SizeM1  SizeClass = "M1"
	SizeM2  SizeClass = "M2"
	SizeLXL SizeClass = "L/XL"
)

// SizeClasses lists every class in form order: tariff scheme first, then the
// comparison-only classes.
var SizeClasses = []SizeClass{
	SizeSP, SizeP1, SizeP2, SizeP3, SizeM, SizeG, SizeSG,
	SizeXXS, SizeXS, SizeS, SizeM1, SizeM2, SizeLXL,
}

var sizeDescriptions = map[SizeClass]string{
	SizeSP:  "Super Pequeño (ej: smartphone)",
	SizeP1:  "Pequeño 1 (ej: bici infantil)",
	SizeP2:  "Pequeño 2 (ej: silla de escritorio)",
	SizeP3:  "Pequeño 3 (ej: set de 4 neumáticos)",
	SizeM:   "Mediano (ej: congeladora)",
	SizeG:   "Grande (ej: living)",
	SizeSG:  "Súper Grande (ej: sofá seccional)",
	SizeXXS: "Extra extra pequeño",
	SizeXS:  "Extra pequeño",
	SizeS:   "Pequeño",
	SizeM1:  "Mediano 1",
	SizeM2:  "Mediano 2",
	SizeLXL: "Grande / extra grande",
}

// SizeCategory buckets size classes for the scoring rules.
type SizeCategory int

const (
	Small SizeCategory = iota
	Medium
	Large
)

func (c SizeCategory) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	default:
		return "large"
	}
}

var sizeCategories = map[SizeClass]SizeCategory{
	SizeSP:  Small,
	SizeP1:  Small,
	SizeXXS: Small,
	SizeXS:  Small,
	SizeP2:  Medium,
	SizeP3:  Medium,
	SizeS:   Medium,
	SizeM1:  Medium,
	SizeM:   Large,
	SizeG:   Large,
	SizeSG:  Large,
	SizeM2:  Large,
	SizeLXL: Large,
}

// Category returns the size bucket for the class. Unknown classes are treated
// as large, which never happens for values obtained from ParseSizeClass.
func (s SizeClass) Category() SizeCategory {
	if c, ok := sizeCategories[s]; ok {
		return c
	}
	return Large
}

// Description returns the human label shown next to the class.
func (s SizeClass) Description() string {
	return sizeDescriptions[s]
}

// Valid reports whether s is a known class.
func (s SizeClass) Valid() bool {
	_, ok := sizeCategories[s]
	return ok
}

// ParseSizeClass accepts a class tag ignoring case and punctuation, so "LXL"
// and "l-xl" both resolve to "L/XL".
func ParseSizeClass(raw string) (SizeClass, error) {
	key := match.Key(raw)
	for _, s := range SizeClasses {
		if key != "" && key == match.Key(string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown size class %q", raw)
}

// Region is the seller's main operating region.
type Region string

const (
	Metro Region = "RM"
	Other Region = "OTRA"
)

// Regions lists the selectable regions.
var Regions = []Region{Metro, Other}

// Label returns the display text for the region.
func (r Region) Label() string {
	if r == Metro {
		return "Región Metropolitana (Santiago)"
	}
	return "Otra región"
}

var regionAliases = map[string]Region{
	"rm":                  Metro,
	"metro":               Metro,
	"santiago":            Metro,
	"regionmetropolitana": Metro,
	"otra":                Other,
	"other":               Other,
	"otraregion":          Other,
}

// ParseRegion accepts the region code, its label or a common alias such as
// "Santiago", ignoring case and accents.
func ParseRegion(raw string) (Region, error) {
	key := match.Key(raw)
	if r, ok := regionAliases[key]; ok {
		return r, nil
	}
	for _, r := range Regions {
		if key == match.Key(r.Label()) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region %q", raw)
}
