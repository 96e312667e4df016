package scoring

import (
	"sort"

	"logistics-guide/backend/internal/catalog"
)

// Entry is one ranked modality.
type Entry struct {
	Rank      int              `json:"rank"`
	Modality  catalog.Modality `json:"modality"`
	Score     float64          `json:"score"`
	Profile   Profile          `json:"profile"`
	Strengths []Dimension      `json:"-"`
}

// Ranking is the ordered result of Rank, best first.
type Ranking struct {
	Entries []Entry  `json:"entries"`
	Weights Weights  `json:"weights"`
	Applied []string `json:"applied_adjustments"`
}

// Top returns the best ranked entry.
func (r Ranking) Top() Entry {
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[0]
}

// Engine scores modalities with a fixed weight set.
type Engine struct {
	weights Weights
}

// NewEngine builds an engine. Weights are normalised; a zero sum falls back
// to the balanced preset, reported through the returned notice.
func NewEngine(w Weights) (*Engine, string, error) {
	normalized, notice, err := w.Normalize()
	if err != nil {
		return nil, "", err
	}
	return &Engine{weights: normalized}, notice, nil
}

// Weights returns the normalised weights in use.
func (e *Engine) Weights() Weights {
	if e == nil {
		return DefaultWeights()
	}
	return e.weights
}

// Rank scores every modality for s and orders them by descending score.
// Ties keep the modality declaration order.
func (e *Engine) Rank(s catalog.Scenario) Ranking {
	w := e.Weights()
	profiles, applied := Profiles(s)

	entries := make([]Entry, 0, len(catalog.Modalities))
	for _, m := range catalog.Modalities {
		p := profiles[m]
		entries = append(entries, Entry{
			Modality:  m,
			Score:     Score(p, w),
			Profile:   p,
			Strengths: strengths(p),
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return Ranking{Entries: entries, Weights: w, Applied: applied}
}

// Score is the weighted sum of a profile.
func Score(p Profile, w Weights) float64 {
	var total float64
	for _, d := range Dimensions {
		total += w.Get(d) * p.Get(d)
	}
	return total
}

// strengths returns the two highest-rated dimensions.
func strengths(p Profile) []Dimension {
	dims := append([]Dimension(nil), Dimensions...)
	sort.SliceStable(dims, func(a, b int) bool {
		return p.Get(dims[a]) > p.Get(dims[b])
	})
	return dims[:2]
}
