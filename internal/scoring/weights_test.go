package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsSumToOne(t *testing.T) {
	for _, name := range PresetNames() {
		w, err := Preset(name)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, w.Sum(), 1e-9, name)
	}
}

func TestPresetLookup(t *testing.T) {
	w, err := Preset("")
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights(), w)

	w, err = Preset(" Classic ")
	require.NoError(t, err)
	assert.Equal(t, Weights{Cost: 0.40, Speed: 0.25, Control: 0.20, Coverage: 0.15}, w)

	_, err = Preset("aggressive")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		in         Weights
		want       Weights
		wantNotice string
		wantErr    bool
	}{
		{"scales", Weights{Cost: 2, Speed: 1, Control: 1}, Weights{Cost: 0.5, Speed: 0.25, Control: 0.25}, "", false},
		{"zero falls back", Weights{}, Weights{Cost: 0.25, Speed: 0.25, Control: 0.25, Coverage: 0.25}, ZeroWeightsNotice, false},
		{"negative", Weights{Cost: -1, Speed: 2}, Weights{}, "", true},
		{"huge finite", Weights{Cost: 1e308, Speed: 1e308, Control: 1e308, Coverage: 1e308}, Weights{Cost: 0.25, Speed: 0.25, Control: 0.25, Coverage: 0.25}, "", false},
		{"huge mixed", Weights{Cost: 1.5e308, Speed: 1.5e308}, Weights{Cost: 0.5, Speed: 0.5}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, notice, err := tc.in.Normalize()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantNotice, notice)
			for _, d := range Dimensions {
				assert.InDelta(t, tc.want.Get(d), got.Get(d), 1e-9, d.String())
			}
			assert.InDelta(t, 1.0, got.Sum(), 1e-12)
		})
	}
}

func TestNewEngineZeroWeightsNotice(t *testing.T) {
	engine, notice, err := NewEngine(Weights{})
	require.NoError(t, err)
	assert.Equal(t, ZeroWeightsNotice, notice)
	assert.Equal(t, presets[PresetBalanced], engine.Weights())
}

func TestNewEngineHugeWeightsStayBalanced(t *testing.T) {
	engine, notice, err := NewEngine(Weights{Cost: 1e308, Speed: 1e308, Control: 1e308, Coverage: 1e308})
	require.NoError(t, err)
	assert.Empty(t, notice)
	for _, d := range Dimensions {
		assert.InDelta(t, 0.25, engine.Weights().Get(d), 1e-9, d.String())
	}
}

func TestLoadWeightsFile(t *testing.T) {
	dir := t.TempDir()

	explicit := filepath.Join(dir, "explicit.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("weights:\n  cost: 4\n  speed: 3\n  control: 2\n  coverage: 1\n"), 0o600))
	w, notice, err := LoadWeightsFile(explicit)
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.InDelta(t, 0.4, w.Cost, 1e-9)
	assert.InDelta(t, 0.1, w.Coverage, 1e-9)

	preset := filepath.Join(dir, "preset.yaml")
	require.NoError(t, os.WriteFile(preset, []byte("preset: balanced\n"), 0o600))
	w, _, err = LoadWeightsFile(preset)
	require.NoError(t, err)
	assert.Equal(t, presets[PresetBalanced], w)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("weights:\n  cost: 0\n"), 0o600))
	_, notice, err = LoadWeightsFile(zero)
	require.NoError(t, err)
	assert.Equal(t, ZeroWeightsNotice, notice)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("{}\n"), 0o600))
	_, _, err = LoadWeightsFile(empty)
	assert.Error(t, err)

	_, _, err = LoadWeightsFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
