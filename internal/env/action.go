package env

import (
	"math"

	"github.com/sliaskonis/finn-rl/internal/catalog"
)

// #region map-action

// MapAction maps a raw agent action in [-1, 1] onto an integer bit-width
// inside the legal interval. The half-width offset already lands the
// result in [b.Lo, b.Hi] for legal inputs (-1 maps to Lo, +1 to Hi), so
// no clamp is reapplied; callers must not pass out-of-range raw actions.
// Pure, deterministic, no side effects.
func MapAction(raw float32, b catalog.Bounds) int {
	span := float64(b.Hi - b.Lo)
	return int(math.Ceil((float64(raw)+1)*span/2 + float64(b.Lo) - 0.5))
}

// #endregion map-action
