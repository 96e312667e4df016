package guide

import (
	"fmt"

	"logistics-guide/backend/internal/catalog"
	"logistics-guide/backend/internal/scoring"
)

// MetroKeyNote is shown when the seller operates from Santiago.
const MetroKeyNote = "Clave Santiago: en productos pequeños la diferencia de precio con externos es baja; " +
	"en medianos/grandes la ventaja de Crossdock (Ripley) es muy significativa."

// FinalMileNote explains the client-paid delivery fee common to every card.
const FinalMileNote = "El costo para el cliente (despacho final) se calcula con la matriz estándar por zona y tamaño. " +
	"Es el mismo cálculo en todas las modalidades."

var ordinals = []string{"Primero", "Segundo", "Tercero", "Cuarto"}

// Card is the rendered recommendation for one modality.
type Card struct {
	Rank        int              `json:"rank"`
	Ordinal     string           `json:"ordinal"`
	Modality    catalog.Modality `json:"modality"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Score       float64          `json:"score"`
	Profile     scoring.Profile  `json:"profile"`
	Strengths   []string         `json:"strengths"`
	Costs       []CostLine       `json:"costs"`
	Benefits    []string         `json:"benefits"`
	Drawbacks   []string         `json:"drawbacks"`
}

// Guide is the full answer to one form submission.
type Guide struct {
	Scenario catalog.Scenario `json:"-"`
	Weights  scoring.Weights  `json:"weights"`
	Notice   string           `json:"notice,omitempty"`
	KeyNote  string           `json:"key_note,omitempty"`
	Footnote string           `json:"footnote"`
	Applied  []string         `json:"applied_adjustments"`
	Cards    []Card           `json:"cards"`
}

// Top returns the first card.
func (g Guide) Top() Card {
	if len(g.Cards) == 0 {
		return Card{}
	}
	return g.Cards[0]
}

// Build ranks the modalities for s with the engine and attaches costs,
// benefits and drawbacks to each. notice is carried through to the guide.
func Build(engine *scoring.Engine, s catalog.Scenario, notice string) Guide {
	ranking := engine.Rank(s)

	g := Guide{
		Scenario: s,
		Weights:  ranking.Weights,
		Notice:   notice,
		Footnote: FinalMileNote,
		Applied:  ranking.Applied,
		Cards:    make([]Card, 0, len(ranking.Entries)),
	}
	if s.InMetro() {
		g.KeyNote = MetroKeyNote
	}

	for _, entry := range ranking.Entries {
		g.Cards = append(g.Cards, Card{
			Rank:        entry.Rank,
			Ordinal:     ordinal(entry.Rank),
			Modality:    entry.Modality,
			Name:        entry.Modality.Name(),
			Description: entry.Modality.Description(),
			Score:       entry.Score,
			Profile:     entry.Profile,
			Strengths:   strengthLabels(entry.Strengths),
			Costs:       CostTable(entry.Modality, s.SizeClass, s.Region, s.ReferencePrice),
			Benefits:    Benefits(entry.Modality, s),
			Drawbacks:   Drawbacks(entry.Modality, s),
		})
	}
	return g
}

func ordinal(rank int) string {
	if rank >= 1 && rank <= len(ordinals) {
		return ordinals[rank-1]
	}
	return fmt.Sprintf("#%d", rank)
}

func strengthLabels(dims []scoring.Dimension) []string {
	out := make([]string, 0, len(dims))
	for _, d := range dims {
		out = append(out, d.Label())
	}
	return out
}
