package scoring

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Weights sets the relative importance of each dimension. Normalised weights
// sum to 1.0.
type Weights struct {
	Cost     float64 `json:"cost" yaml:"cost"`
	Speed    float64 `json:"speed" yaml:"speed"`
	Control  float64 `json:"control" yaml:"control"`
	Coverage float64 `json:"coverage" yaml:"coverage"`
}

const (
	PresetDefault  = "default"
	PresetClassic  = "classic"
	PresetBalanced = "balanced"
)

// ZeroWeightsNotice is attached to results when user weights summed to zero.
const ZeroWeightsNotice = "Los pesos suman cero; se usó el perfil equilibrado."

var presets = map[string]Weights{
	PresetDefault:  {Cost: 0.42, Speed: 0.28, Control: 0.20, Coverage: 0.10},
	PresetClassic:  {Cost: 0.40, Speed: 0.25, Control: 0.20, Coverage: 0.15},
	PresetBalanced: {Cost: 0.25, Speed: 0.25, Control: 0.25, Coverage: 0.25},
}

// DefaultWeights returns the canonical preset.
func DefaultWeights() Weights {
	return presets[PresetDefault]
}

// Preset looks up a named preset.
func Preset(name string) (Weights, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = PresetDefault
	}
	w, ok := presets[key]
	if !ok {
		return Weights{}, fmt.Errorf("unknown weights preset %q (known: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return w, nil
}

// PresetNames lists the known presets sorted by name.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the weight for d.
func (w Weights) Get(d Dimension) float64 {
	switch d {
	case Cost:
		return w.Cost
	case Speed:
		return w.Speed
	case Control:
		return w.Control
	default:
		return w.Coverage
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Cost + w.Speed + w.Control + w.Coverage
}

func (w Weights) max() float64 {
	var m float64
	for _, d := range Dimensions {
		m = math.Max(m, w.Get(d))
	}
	return m
}

// Validate rejects negative or non-finite weights.
func (w Weights) Validate() error {
	for _, d := range Dimensions {
		v := w.Get(d)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s weight is not a finite number", d)
		}
		if v < 0 {
			return fmt.Errorf("%s weight must not be negative", d)
		}
	}
	return nil
}

// Normalize scales w so the weights sum to 1.0. A zero sum falls back to the
// balanced preset and returns ZeroWeightsNotice.
func (w Weights) Normalize() (Weights, string, error) {
	if err := w.Validate(); err != nil {
		return Weights{}, "", err
	}
	largest := w.max()
	if largest == 0 {
		return presets[PresetBalanced], ZeroWeightsNotice, nil
	}
	// scale into [0,1] first so huge finite inputs cannot overflow the sum
	w = Weights{
		Cost:     w.Cost / largest,
		Speed:    w.Speed / largest,
		Control:  w.Control / largest,
		Coverage: w.Coverage / largest,
	}
	sum := w.Sum()
	n := Weights{
		Cost:    w.Cost / sum,
		Speed:   w.Speed / sum,
		Control: w.Control / sum,
	}
	// the last component absorbs rounding so the sum is exactly 1
	n.Coverage = 1 - n.Cost - n.Speed - n.Control
	if n.Coverage < 0 {
		n.Coverage = 0
	}
	return n, "", nil
}

// weightsFile is the YAML layout of a weights file. Either a preset name or
// explicit weights may be given; explicit weights win.
type weightsFile struct {
	Preset  string   `yaml:"preset"`
	Weights *Weights `yaml:"weights"`
}

// LoadWeightsFile reads weights from a YAML file and normalises them.
func LoadWeightsFile(path string) (Weights, string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Weights{}, "", fmt.Errorf("read weights file: %w", err)
	}
	var raw weightsFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Weights{}, "", fmt.Errorf("unmarshal weights file: %w", err)
	}
	if raw.Weights == nil {
		if strings.TrimSpace(raw.Preset) == "" {
			return Weights{}, "", errors.New("weights file defines neither preset nor weights")
		}
		w, err := Preset(raw.Preset)
		return w, "", err
	}
	w, notice, err := raw.Weights.Normalize()
	if err != nil {
		return Weights{}, "", fmt.Errorf("weights file: %w", err)
	}
	return w, notice, nil
}
