package fpga

import (
	"fmt"
	"math"

	"github.com/sliaskonis/finn-rl/internal/reward"
)

// #region margins

// Margins scale device totals down to the usable budget per resource
// class. Placement and routing need headroom, so the full device count is
// never treated as available.
type Margins struct {
	BRAM float64
	LUT  float64
	DSP  float64
}

// DefaultMargins returns the folding optimizer's utilization targets.
func DefaultMargins() Margins {
	return Margins{BRAM: 0.80, LUT: 0.70, DSP: 0.80}
}

// Apply scales device totals down to whole-unit budgets.
func (m Margins) Apply(totals reward.Snapshot) reward.Snapshot {
	return reward.Snapshot{
		BRAM: int(math.Floor(float64(totals.BRAM) * m.BRAM)),
		LUT:  int(math.Floor(float64(totals.LUT) * m.LUT)),
		DSP:  int(math.Floor(float64(totals.DSP) * m.DSP)),
	}
}

// #endregion margins

// #region board

// Board describes a supported target platform.
type Board struct {
	Name    string
	Part    string
	Totals  reward.Snapshot
	Margins Margins
}

var boards = map[string]Board{
	"U250": {
		Name:    "U250",
		Part:    "xcu250-figd2104-2L-e",
		Totals:  reward.Snapshot{BRAM: 2688, LUT: 1728000, DSP: 12288},
		Margins: DefaultMargins(),
	},
	"ZCU102": {
		Name:    "ZCU102",
		Part:    "xczu9eg-ffvb1156-2-e",
		Totals:  reward.Snapshot{BRAM: 912, LUT: 274080, DSP: 2520},
		Margins: DefaultMargins(),
	},
}

// Lookup resolves a board name to its platform description.
func Lookup(name string) (Board, error) {
	b, ok := boards[name]
	if !ok {
		return Board{}, fmt.Errorf("unknown board %q", name)
	}
	return b, nil
}

// Budget returns the available per-resource budget: device totals scaled
// by the safety margins, floored to whole units.
func (b Board) Budget() reward.Snapshot {
	return b.Margins.Apply(b.Totals)
}

// #endregion board
