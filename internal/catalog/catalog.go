package catalog

// #region build

// Build constructs the episode catalog and its normalized feature matrix
// from the pipeline's model description. Activations are placed first, then
// compute layers, each group in graph order; downstream quantization relies
// on activations occupying the first NumActs slots.
//
// Activations with a global minimum of 1 bit are widened to a minimum of 2
// so the padding value stays representable.
func Build(nodes []NodeDesc, minBit, maxBit int) (Catalog, [][]float32, error) {
	var cat Catalog

	actLo := minBit
	if actLo == 1 {
		actLo = 2
	}

	for _, n := range nodes {
		if !n.IsActivation {
			continue
		}
		kind, err := ParseActKind(n.Kind)
		if err != nil {
			return Catalog{}, nil, err
		}
		cat.Entries = append(cat.Entries, Entry{
			Position:     n.Position,
			IsActivation: true,
			Kind:         int(kind),
			Bounds:       Bounds{Lo: actLo, Hi: maxBit},
			Workload:     n.Workload,
			Params:       n.Params,
		})
	}
	cat.NumActs = len(cat.Entries)

	for _, n := range nodes {
		if n.IsActivation {
			continue
		}
		kind, err := ParseLayerKind(n.Kind)
		if err != nil {
			return Catalog{}, nil, err
		}
		cat.Entries = append(cat.Entries, Entry{
			Position:     n.Position,
			IsActivation: false,
			Kind:         int(kind),
			Bounds:       Bounds{Lo: minBit, Hi: maxBit},
			Workload:     n.Workload,
			Params:       n.Params,
		})
	}

	if len(cat.Entries) == 0 {
		return Catalog{}, nil, ErrNoQuantizable
	}

	return cat, encode(cat), nil
}

// #endregion build

// #region encode

// Feature layout per row. The last slot is overwritten with the previous
// decision (normalized by the global maximum bit-width) as the episode
// advances.
const (
	FeatPosition = iota
	FeatIsAct
	FeatKind
	FeatWorkload
	FeatParams
	FeatPrevAction
	NumFeatures
)

// encode builds the raw feature matrix and min-max scales each column
// to [0,1]. A constant column is left unscaled.
func encode(cat Catalog) [][]float32 {
	rows := make([][]float32, cat.Len())
	for i, e := range cat.Entries {
		actFlag := float32(0)
		if e.IsActivation {
			actFlag = 1
		}
		rows[i] = []float32{
			float32(e.Position),
			actFlag,
			float32(e.Kind),
			float32(e.Workload),
			float32(e.Params),
			1.0,
		}
	}

	for col := 0; col < NumFeatures; col++ {
		lo, hi := rows[0][col], rows[0][col]
		for _, r := range rows[1:] {
			if r[col] < lo {
				lo = r[col]
			}
			if r[col] > hi {
				hi = r[col]
			}
		}
		if hi-lo <= 0 {
			continue
		}
		for _, r := range rows {
			r[col] = (r[col] - lo) / (hi - lo)
		}
	}

	return rows
}

// #endregion encode
