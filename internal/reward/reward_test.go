package reward

import (
	"math"
	"testing"
)

func TestTerm_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		avail int
		used  int
		want  float64
	}{
		{"zero-usage", 100, 0, 1},
		{"full-usage", 100, 100, -1},
		{"half-usage", 100, 50, 0},
		{"over-budget", 100, 150, -2},
		{"zero-usage-zero-avail", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Term(tt.avail, tt.used); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Term(%d, %d) = %v, want %v", tt.avail, tt.used, got, tt.want)
			}
		})
	}
}

func TestWeights_SumConstant(t *testing.T) {
	avail := Snapshot{BRAM: 1000, LUT: 1000, DSP: 1000}
	tests := []struct {
		name string
		used Snapshot
	}{
		{"bram-heavy", Snapshot{BRAM: 900, LUT: 100, DSP: 50}},
		{"lut-heavy", Snapshot{BRAM: 10, LUT: 990, DSP: 500}},
		{"dsp-heavy", Snapshot{BRAM: 10, LUT: 20, DSP: 999}},
		{"all-equal", Snapshot{BRAM: 500, LUT: 500, DSP: 500}},
		{"all-zero", Snapshot{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Weights(avail, tt.used)
			sum := w[BRAM] + w[LUT] + w[DSP]
			if math.Abs(sum-0.75) > 1e-9 {
				t.Errorf("weights sum = %v, want 0.75", sum)
			}
		})
	}
}

func TestWeights_RankFollowsBottleneck(t *testing.T) {
	avail := Snapshot{BRAM: 1000, LUT: 1000, DSP: 1000}
	used := Snapshot{BRAM: 100, LUT: 800, DSP: 400}

	w := Weights(avail, used)
	if w[LUT] != 0.35 {
		t.Errorf("LUT (most utilized) weight = %v, want 0.35", w[LUT])
	}
	if w[DSP] != 0.25 {
		t.Errorf("DSP (second) weight = %v, want 0.25", w[DSP])
	}
	if w[BRAM] != 0.15 {
		t.Errorf("BRAM (third) weight = %v, want 0.15", w[BRAM])
	}
}

func TestWeights_TiePriority(t *testing.T) {
	// All ratios exactly equal: the fixed priority BRAM > LUT > DSP decides.
	avail := Snapshot{BRAM: 100, LUT: 200, DSP: 400}
	used := Snapshot{BRAM: 50, LUT: 100, DSP: 200}

	w := Weights(avail, used)
	if w[BRAM] != 0.35 || w[LUT] != 0.25 || w[DSP] != 0.15 {
		t.Errorf("tie weights = bram:%v lut:%v dsp:%v, want 0.35/0.25/0.15", w[BRAM], w[LUT], w[DSP])
	}
}

func TestCompute_AccuracyMapping(t *testing.T) {
	// With zero usage every resource term is +1, so the resource part
	// contributes exactly 0.75.
	avail := Snapshot{BRAM: 100, LUT: 100, DSP: 100}
	used := Snapshot{}

	tests := []struct {
		name string
		acc  float64
		want float64
	}{
		{"perfect", 100, 0.25 + 0.75},
		{"zero", 0, -0.25 + 0.75},
		{"midpoint", 50, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.acc, avail, used); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Compute(%v) = %v, want %v", tt.acc, got, tt.want)
			}
		})
	}
}

func TestCompute_OverBudgetBelowMinusOne(t *testing.T) {
	avail := Snapshot{BRAM: 100, LUT: 100, DSP: 100}
	used := Snapshot{BRAM: 300, LUT: 300, DSP: 300}

	got := Compute(0, avail, used)
	if got >= -1 {
		t.Errorf("over-budget reward = %v, want < -1", got)
	}
}
