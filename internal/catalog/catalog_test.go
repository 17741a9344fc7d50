package catalog

import (
	"errors"
	"testing"
)

func sampleNodes() []NodeDesc {
	// Graph order interleaves compute layers and activations; Build must
	// regroup them with activations first.
	return []NodeDesc{
		{Position: 1, IsActivation: false, Kind: "conv2d", Workload: 4000, Params: 450},
		{Position: 2, IsActivation: true, Kind: "relu", Workload: 100, Params: 0},
		{Position: 3, IsActivation: false, Kind: "linear", Workload: 2000, Params: 1200},
		{Position: 4, IsActivation: true, Kind: "sigmoid", Workload: 50, Params: 0},
	}
}

func TestBuild_ActivationsFirst(t *testing.T) {
	cat, _, err := Build(sampleNodes(), 1, 8)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cat.Len() != 4 {
		t.Fatalf("got %d entries, want 4", cat.Len())
	}
	if cat.NumActs != 2 {
		t.Errorf("NumActs = %d, want 2", cat.NumActs)
	}
	seenCompute := false
	for i, e := range cat.Entries {
		if e.IsActivation && seenCompute {
			t.Errorf("entry %d: activation after compute layer", i)
		}
		if !e.IsActivation {
			seenCompute = true
		}
	}
	// Graph order preserved within each group
	if cat.Entries[0].Position != 2 || cat.Entries[1].Position != 4 {
		t.Errorf("activation order = [%d %d], want [2 4]", cat.Entries[0].Position, cat.Entries[1].Position)
	}
	if cat.Entries[2].Position != 1 || cat.Entries[3].Position != 3 {
		t.Errorf("compute order = [%d %d], want [1 3]", cat.Entries[2].Position, cat.Entries[3].Position)
	}
}

func TestBuild_ActivationMinWidened(t *testing.T) {
	tests := []struct {
		name       string
		minBit     int
		wantActLo  int
		wantCompLo int
	}{
		{"min-1-widened", 1, 2, 1},
		{"min-2-kept", 2, 2, 2},
		{"min-4-kept", 4, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _, err := Build(sampleNodes(), tt.minBit, 8)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := cat.Entries[0].Bounds.Lo; got != tt.wantActLo {
				t.Errorf("activation lower = %d, want %d", got, tt.wantActLo)
			}
			if got := cat.Entries[cat.NumActs].Bounds.Lo; got != tt.wantCompLo {
				t.Errorf("compute lower = %d, want %d", got, tt.wantCompLo)
			}
		})
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	_, _, err := Build(nil, 1, 8)
	if !errors.Is(err, ErrNoQuantizable) {
		t.Errorf("got %v, want ErrNoQuantizable", err)
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	nodes := []NodeDesc{{Position: 1, IsActivation: true, Kind: "gelu"}}
	_, _, err := Build(nodes, 1, 8)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
	nodes = []NodeDesc{{Position: 1, IsActivation: false, Kind: "conv3d"}}
	_, _, err = Build(nodes, 1, 8)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
}

func TestEncode_MinMaxScaling(t *testing.T) {
	_, feats, err := Build(sampleNodes(), 1, 8)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// Workload column spans [50, 4000]; after scaling the extremes must be 0 and 1.
	var lo, hi float32 = 1, 0
	for _, r := range feats {
		if r[FeatWorkload] < lo {
			lo = r[FeatWorkload]
		}
		if r[FeatWorkload] > hi {
			hi = r[FeatWorkload]
		}
	}
	if lo != 0 || hi != 1 {
		t.Errorf("workload column range = [%v, %v], want [0, 1]", lo, hi)
	}
	for _, r := range feats {
		for col, v := range r {
			if v < 0 || v > 1 {
				t.Errorf("col %d value %v outside [0,1]", col, v)
			}
		}
	}
}

func TestEncode_ConstantColumnUnscaled(t *testing.T) {
	nodes := []NodeDesc{
		{Position: 1, IsActivation: true, Kind: "relu", Workload: 300, Params: 0},
		{Position: 2, IsActivation: true, Kind: "relu", Workload: 300, Params: 0},
		{Position: 3, IsActivation: false, Kind: "linear", Workload: 300, Params: 500},
	}
	_, feats, err := Build(nodes, 2, 8)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, r := range feats {
		v := r[FeatWorkload]
		if v != v { // NaN check
			t.Fatalf("row %d: workload is NaN", i)
		}
		if v != 300 {
			t.Errorf("row %d: constant workload column scaled to %v, want 300", i, v)
		}
	}
}

func TestParseKinds_Closed(t *testing.T) {
	for s, want := range actKindNames {
		got, err := ParseActKind(s)
		if err != nil || got != want {
			t.Errorf("ParseActKind(%q) = %v, %v", s, got, err)
		}
		if got.String() != s {
			t.Errorf("ActKind(%v).String() = %q, want %q", got, got.String(), s)
		}
	}
	for s, want := range layerKindNames {
		got, err := ParseLayerKind(s)
		if err != nil || got != want {
			t.Errorf("ParseLayerKind(%q) = %v, %v", s, got, err)
		}
		if got.String() != s {
			t.Errorf("LayerKind(%v).String() = %q, want %q", got, got.String(), s)
		}
	}
}
