package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics-guide/backend/internal/catalog"
	"logistics-guide/backend/internal/scoring"
)

func scenario() catalog.Scenario {
	return catalog.Scenario{
		SizeClass:      catalog.SizeP2,
		Region:         catalog.Metro,
		HasWarehouse:   true,
		DailyOrders:    10,
		ReferencePrice: 29990,
	}
}

func findLine(lines []CostLine, concept string) (CostLine, bool) {
	for _, l := range lines {
		if l.Concept == concept {
			return l, true
		}
	}
	return CostLine{}, false
}

func TestCostTableCrossdockMetroComparison(t *testing.T) {
	lines := CostTable(catalog.Crossdock, catalog.SizeM2, catalog.Metro, 29990)

	ripley, ok := findLine(lines, "Despacho Santiago: Ripley")
	require.True(t, ok)
	assert.Equal(t, 13990, ripley.Amount)
	assert.Equal(t, "$13.990", ripley.Estimated)
	assert.Contains(t, ripley.Detail, "diferencia muy significativa")

	external, ok := findLine(lines, "Despacho Santiago: operadores externos")
	require.True(t, ok)
	assert.Equal(t, 79990, external.Amount)

	// M2 has no first-mile or reverse tariff.
	assert.False(t, lines[0].Priced)
	assert.Equal(t, consultTariff, lines[0].Estimated)
	assert.False(t, lines[1].Priced)
}

func TestCostTableCrossdockOutsideMetro(t *testing.T) {
	lines := CostTable(catalog.Crossdock, catalog.SizeM2, catalog.Other, 29990)
	_, ok := findLine(lines, "Despacho Santiago: Ripley")
	assert.False(t, ok)
}

func TestCostTableFulfillment(t *testing.T) {
	lines := CostTable(catalog.Fulfillment, catalog.SizeSG, catalog.Other, 10000)

	assert.Equal(t, "Primera milla", lines[0].Concept)
	assert.True(t, lines[0].Priced)
	assert.Equal(t, 0, lines[0].Amount)
	assert.Equal(t, "No aplica (stock en CD Ripley).", lines[0].Detail)

	var storage int
	for _, l := range lines {
		if l.Concept == "Almacenamiento + cofinanciamiento" {
			storage++
			assert.Equal(t, "Tarifa oficial", l.Estimated)
		}
	}
	assert.Equal(t, 5, storage)
}

func TestCostTableOwnFleet(t *testing.T) {
	metro := CostTable(catalog.OwnFleet, catalog.SizeG, catalog.Metro, 10000)
	line, ok := findLine(metro, "Última milla flota propia (RM)")
	require.True(t, ok)
	assert.True(t, line.Priced)
	assert.Equal(t, 6990, line.Amount)

	other := CostTable(catalog.OwnFleet, catalog.SizeG, catalog.Other, 10000)
	line, ok = findLine(other, "Última milla flota propia (RM)")
	require.True(t, ok)
	assert.False(t, line.Priced)
	assert.Equal(t, consultTariff, line.Estimated)
	assert.Equal(t, "Tarifario confirmado disponible (SP, P1, P2, P3, M, G, SG).", line.Detail)
}

func TestCostTableEndsWithFinalMile(t *testing.T) {
	for _, m := range catalog.Modalities {
		for _, s := range catalog.SizeClasses {
			lines := CostTable(m, s, catalog.Metro, 20000)
			require.NotEmpty(t, lines)
			last := lines[len(lines)-1]
			assert.Equal(t, finalMileConcept, last.Concept)
			assert.False(t, last.Priced)
			assert.Equal(t, "Primera milla", lines[0].Concept)
		}
	}
}

func TestCostTableReverseLogistics(t *testing.T) {
	lines := CostTable(catalog.OperatorLogistics, catalog.SizeSP, catalog.Other, 20000)
	assert.Equal(t, 1000, lines[0].Amount)
	assert.Equal(t, "Logística inversa", lines[1].Concept)
	assert.Equal(t, 2800, lines[1].Amount)
	assert.Equal(t, "SP (Super Pequeño (ej: smartphone))", lines[1].Detail)
}

func TestConditionalTexts(t *testing.T) {
	s := scenario()
	assert.NotContains(t, Benefits(catalog.Crossdock, s), "Puedes ofrecer retiro en tienda: el despacho puede ser $0 para el cliente.")
	s.WantsStorePickup = true
	assert.Contains(t, Benefits(catalog.Crossdock, s), "Puedes ofrecer retiro en tienda: el despacho puede ser $0 para el cliente.")

	s = scenario()
	assert.Contains(t, Benefits(catalog.OperatorLogistics, s), "Control total del inventario en tu bodega.")
	assert.NotContains(t, Drawbacks(catalog.OperatorLogistics, s), "Requiere bodega propia para operar el stock.")
	s.HasWarehouse = false
	assert.NotContains(t, Benefits(catalog.OperatorLogistics, s), "Control total del inventario en tu bodega.")
	assert.Contains(t, Drawbacks(catalog.OperatorLogistics, s), "Requiere bodega propia para operar el stock.")

	s = scenario()
	assert.NotContains(t, Benefits(catalog.OwnFleet, s), "Mejor manejo de cargas muy voluminosas o especiales.")
	s.IsBulky = true
	assert.Contains(t, Benefits(catalog.OwnFleet, s), "Mejor manejo de cargas muy voluminosas o especiales.")

	s.Region = catalog.Other
	assert.Contains(t, Drawbacks(catalog.OwnFleet, s), "Fuera de RM no hay tarifa confirmada.")
}

func TestTextsAreNeverNil(t *testing.T) {
	for _, m := range catalog.Modalities {
		assert.NotNil(t, Benefits(m, scenario()))
		assert.NotEmpty(t, Drawbacks(m, scenario()))
	}
}

func TestBuild(t *testing.T) {
	engine, _, err := scoring.NewEngine(scoring.DefaultWeights())
	require.NoError(t, err)

	s := scenario()
	s.SizeClass = catalog.SizeM2
	g := Build(engine, s, "")

	require.Len(t, g.Cards, 4)
	assert.Equal(t, MetroKeyNote, g.KeyNote)
	assert.Equal(t, FinalMileNote, g.Footnote)
	assert.Equal(t, catalog.Crossdock, g.Top().Modality)
	assert.Equal(t, []string{"Costo", "Velocidad"}, g.Top().Strengths)

	seen := map[catalog.Modality]bool{}
	for i, card := range g.Cards {
		assert.Equal(t, i+1, card.Rank)
		assert.Equal(t, ordinals[i], card.Ordinal)
		assert.NotEmpty(t, card.Name)
		assert.NotEmpty(t, card.Costs)
		seen[card.Modality] = true
	}
	assert.Len(t, seen, 4)
}

func TestBuildOutsideMetroHasNoKeyNote(t *testing.T) {
	engine, notice, err := scoring.NewEngine(scoring.Weights{})
	require.NoError(t, err)

	s := scenario()
	s.Region = catalog.Other
	g := Build(engine, s, notice)
	assert.Empty(t, g.KeyNote)
	assert.Equal(t, scoring.ZeroWeightsNotice, g.Notice)
}
