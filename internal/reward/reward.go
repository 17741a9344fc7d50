package reward

import "sort"

// #region weights

// Fixed share of the signal given to accuracy; the remaining 0.75 is split
// across the three resources by utilization rank.
const AccuracyWeight = 0.25

// Rank weights for the most-, second-, and third-utilized resource.
var rankWeights = [3]float64{0.35, 0.25, 0.15}

// Weights assigns each resource its dynamic weight by utilization ratio,
// most-utilized first. Exact ties keep the fixed priority order
// BRAM > LUT > DSP (the sort is stable over that order).
func Weights(avail, used Snapshot) [NumResources]float64 {
	ratios := [NumResources]float64{
		BRAM: ratio(used.BRAM, avail.BRAM),
		LUT:  ratio(used.LUT, avail.LUT),
		DSP:  ratio(used.DSP, avail.DSP),
	}

	order := []Resource{BRAM, LUT, DSP}
	sort.SliceStable(order, func(i, j int) bool {
		return ratios[order[i]] > ratios[order[j]]
	})

	var w [NumResources]float64
	for rank, r := range order {
		w[r] = rankWeights[rank]
	}
	return w
}

func ratio(used, avail int) float64 {
	if avail <= 0 {
		if used > 0 {
			return 1
		}
		return 0
	}
	return float64(used) / float64(avail)
}

// #endregion weights

// #region term

// Term scores one resource: +1 at zero usage, -1 at exactly full usage,
// linear in between. Over-budget usage goes below -1, not clamped.
func Term(avail, used int) float64 {
	if used == 0 {
		return 1
	}
	if avail <= 0 {
		return -1
	}
	return 2*float64(avail-used)/float64(avail) - 1
}

// #endregion term

// #region compute

// Compute combines the accuracy delta and the three resource terms.
// acc is a percentage in [0,100]; it maps linearly onto [-1,1] and carries
// a fixed quarter of the signal. Resource pressure carries the rest, with
// the weight following whichever resource is currently the bottleneck.
// Nominal range is [-1,1]; over-budget usage can push the result below -1.
func Compute(acc float64, avail, used Snapshot) float64 {
	accComponent := acc*0.02 - 1.0

	w := Weights(avail, used)
	r := AccuracyWeight * accComponent
	r += w[BRAM] * Term(avail.BRAM, used.BRAM)
	r += w[LUT] * Term(avail.LUT, used.LUT)
	r += w[DSP] * Term(avail.DSP, used.DSP)
	return r
}

// #endregion compute
