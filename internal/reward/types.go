package reward

// #region resource

// Resource names one of the three tracked FPGA resource classes.
type Resource int

const (
	// BRAM counts on-chip memory blocks, LUT logic cells, DSP arithmetic
	// units. The ordinal order doubles as the tie-break priority.
	BRAM Resource = iota
	LUT
	DSP
	NumResources
)

func (r Resource) String() string {
	switch r {
	case BRAM:
		return "bram"
	case LUT:
		return "lut"
	case DSP:
		return "dsp"
	}
	return "unknown"
}

// #endregion resource

// #region snapshot

// Snapshot holds one count per resource class. A fresh pair (available,
// used) is produced by every cost evaluation; any bit-width change
// invalidates it, so snapshots are never cached across strategies.
type Snapshot struct {
	BRAM int `json:"bram"`
	LUT  int `json:"lut"`
	DSP  int `json:"dsp"`
}

// #endregion snapshot
