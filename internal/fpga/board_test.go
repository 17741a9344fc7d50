package fpga

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		wantPart string
		wantErr  bool
	}{
		{"u250", "U250", "xcu250-figd2104-2L-e", false},
		{"zcu102", "ZCU102", "xczu9eg-ffvb1156-2-e", false},
		{"unknown", "VCK190", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Lookup(tt.board)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if b.Part != tt.wantPart {
				t.Errorf("part = %q, want %q", b.Part, tt.wantPart)
			}
		})
	}
}

func TestBudget_FlooredMargins(t *testing.T) {
	u250, err := Lookup("U250")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	budget := u250.Budget()
	if budget.BRAM != 2150 { // floor(2688 * 0.80)
		t.Errorf("BRAM budget = %d, want 2150", budget.BRAM)
	}
	if budget.LUT != 1209600 { // floor(1728000 * 0.70)
		t.Errorf("LUT budget = %d, want 1209600", budget.LUT)
	}
	if budget.DSP != 9830 { // floor(12288 * 0.80)
		t.Errorf("DSP budget = %d, want 9830", budget.DSP)
	}
}
