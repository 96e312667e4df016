package guide

import (
	"fmt"
	"strings"

	"logistics-guide/backend/internal/catalog"
	"logistics-guide/backend/internal/tariff"
)

// CostLine is one row of a modality's cost table.
type CostLine struct {
	Concept   string `json:"concept"`
	Detail    string `json:"detail"`
	Estimated string `json:"estimated"`
	Amount    int    `json:"amount"`
	Priced    bool   `json:"priced"`
}

const (
	consultTariff     = "Consultar tarifario"
	finalMileConcept  = "Cliente: despacho final"
	finalMileDetail   = "Matriz estándar por zona/tamaño/promos"
	finalMileEstimate = "Variable (mismo cálculo en todas las modalidades)"
)

func pricedLine(concept, detail string, amount int) CostLine {
	return CostLine{Concept: concept, Detail: detail, Estimated: tariff.CLP(amount), Amount: amount, Priced: true}
}

func feeLine(concept string, fee tariff.Fee) CostLine {
	if !fee.Priced {
		return CostLine{Concept: concept, Detail: fee.Note, Estimated: consultTariff}
	}
	return pricedLine(concept, fee.Note, fee.Amount)
}

// CostTable returns the cost rows of modality m for the given class, region
// and reference price. The client's final-mile fee is never computed here.
func CostTable(m catalog.Modality, s catalog.SizeClass, r catalog.Region, price float64) []CostLine {
	lines := []CostLine{feeLine("Primera milla", tariff.FirstMile(m, s, price))}

	classDetail := string(s)
	if desc := s.Description(); desc != "" {
		classDetail = fmt.Sprintf("%s (%s)", s, desc)
	}
	if fee, ok := tariff.ReverseFee(s); ok {
		lines = append(lines, pricedLine("Logística inversa", classDetail, fee))
	} else {
		lines = append(lines, CostLine{Concept: "Logística inversa", Detail: classDetail, Estimated: consultTariff})
	}

	lines = append(lines, modalityLines(m, s, r)...)

	return append(lines, CostLine{Concept: finalMileConcept, Detail: finalMileDetail, Estimated: finalMileEstimate})
}

func modalityLines(m catalog.Modality, s catalog.SizeClass, r catalog.Region) []CostLine {
	switch m {
	case catalog.Crossdock:
		return crossdockLines(s, r)
	case catalog.Fulfillment:
		var lines []CostLine
		for _, tier := range tariff.FulfillmentStorage() {
			lines = append(lines, CostLine{
				Concept:   "Almacenamiento + cofinanciamiento",
				Detail:    tier,
				Estimated: "Tarifa oficial",
			})
		}
		return lines
	case catalog.OwnFleet:
		if fee, ok := tariff.OwnFleetFee(s); ok && r == catalog.Metro {
			return []CostLine{pricedLine("Última milla flota propia (RM)", fmt.Sprintf("Tarifa Envíame para %s", s), fee)}
		}
		classes := make([]string, 0, 8)
		for _, c := range tariff.OwnFleetClasses() {
			classes = append(classes, string(c))
		}
		return []CostLine{{
			Concept:   "Última milla flota propia (RM)",
			Detail:    fmt.Sprintf("Tarifario confirmado disponible (%s).", strings.Join(classes, ", ")),
			Estimated: consultTariff,
		}}
	}
	return nil
}

func crossdockLines(s catalog.SizeClass, r catalog.Region) []CostLine {
	if r != catalog.Metro {
		return nil
	}
	cmp, ok := tariff.CrossdockComparison(s)
	if !ok {
		return nil
	}
	note := "diferencia baja en pequeños"
	if s.Category() != catalog.Small {
		note = "diferencia muy significativa en medianos/grandes"
	}
	return []CostLine{
		pricedLine("Despacho Santiago: Ripley", fmt.Sprintf("%s, %s", s, note), cmp.Platform),
		pricedLine("Despacho Santiago: operadores externos", fmt.Sprintf("%s, %s", s, note), cmp.External),
	}
}
