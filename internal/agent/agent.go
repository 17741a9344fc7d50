package agent

import (
	"math/rand"
)

// #region agent
// Agent proposes a raw action in [-1, 1] for the current observation.
// The environment maps the raw value onto the layer's bit-width range.
type Agent interface {
	Act(obs []float32) float32
}

// #endregion agent

// #region random
// Random samples raw actions uniformly from [-1, 1]. Deterministic for a
// fixed seed, so search runs are reproducible.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) Act(_ []float32) float32 {
	return float32(a.rng.Float64()*2 - 1)
}

// #endregion random

// #region constant
// Constant always proposes the same raw action. Constant(1) allocates
// every layer its maximum width, Constant(-1) its minimum; both are
// useful reference points for a search run.
type Constant float32

func (a Constant) Act(_ []float32) float32 { return float32(a) }

// #endregion constant

// #region jitter
// Jitter proposes raw actions near a center value, with uniform noise of
// the given radius, clamped to [-1, 1]. It narrows a random search
// around a known-good operating point.
type Jitter struct {
	center float32
	radius float32
	rng    *rand.Rand
}

func NewJitter(center, radius float32, seed int64) *Jitter {
	return &Jitter{center: center, radius: radius, rng: rand.New(rand.NewSource(seed))}
}

func (a *Jitter) Act(_ []float32) float32 {
	raw := a.center + float32(a.rng.Float64()*2-1)*a.radius
	if raw > 1 {
		raw = 1
	}
	if raw < -1 {
		raw = -1
	}
	return raw
}

// #endregion jitter
