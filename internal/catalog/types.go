package catalog

import (
	"errors"
	"fmt"
)

// #region errors

// ErrNoQuantizable is returned when the model exposes no quantizable
// activations or compute layers.
var ErrNoQuantizable = errors.New("model has no quantizable decision points")

// ErrUnknownKind is returned when the pipeline reports a layer or
// activation kind outside the closed set.
var ErrUnknownKind = errors.New("unknown layer kind")

// #endregion errors

// #region act-kind

// ActKind identifies a quantizable activation.
type ActKind int

const (
	ActReLU ActKind = iota
	ActReLU6
	ActSigmoid
)

var actKindNames = map[string]ActKind{
	"relu":    ActReLU,
	"relu6":   ActReLU6,
	"sigmoid": ActSigmoid,
}

// ParseActKind maps the pipeline's wire string to an ActKind.
func ParseActKind(s string) (ActKind, error) {
	k, ok := actKindNames[s]
	if !ok {
		return 0, fmt.Errorf("activation %q: %w", s, ErrUnknownKind)
	}
	return k, nil
}

func (k ActKind) String() string {
	switch k {
	case ActReLU:
		return "relu"
	case ActReLU6:
		return "relu6"
	case ActSigmoid:
		return "sigmoid"
	}
	return fmt.Sprintf("act(%d)", int(k))
}

// #endregion act-kind

// #region layer-kind

// LayerKind identifies a quantizable compute layer.
type LayerKind int

const (
	LayerLinear LayerKind = iota
	LayerMHA
	LayerConv1D
	LayerConv2D
	LayerConvTranspose1D
	LayerConvTranspose2D
)

var layerKindNames = map[string]LayerKind{
	"linear":          LayerLinear,
	"mha":             LayerMHA,
	"conv1d":          LayerConv1D,
	"conv2d":          LayerConv2D,
	"convtranspose1d": LayerConvTranspose1D,
	"convtranspose2d": LayerConvTranspose2D,
}

// ParseLayerKind maps the pipeline's wire string to a LayerKind.
func ParseLayerKind(s string) (LayerKind, error) {
	k, ok := layerKindNames[s]
	if !ok {
		return 0, fmt.Errorf("layer %q: %w", s, ErrUnknownKind)
	}
	return k, nil
}

func (k LayerKind) String() string {
	switch k {
	case LayerLinear:
		return "linear"
	case LayerMHA:
		return "mha"
	case LayerConv1D:
		return "conv1d"
	case LayerConv2D:
		return "conv2d"
	case LayerConvTranspose1D:
		return "convtranspose1d"
	case LayerConvTranspose2D:
		return "convtranspose2d"
	}
	return fmt.Sprintf("layer(%d)", int(k))
}

// #endregion layer-kind

// #region node-desc

// NodeDesc is one quantizable point as reported by the pipeline service,
// in graph order.
type NodeDesc struct {
	Position     int64
	IsActivation bool
	Kind         string
	Workload     float64
	Params       float64
}

// #endregion node-desc

// #region bounds

// Bounds is an inclusive legal bit-width interval.
type Bounds struct {
	Lo int
	Hi int
}

// #endregion bounds

// #region entry

// Entry is one decision point: a quantizable activation or compute layer.
// Kind holds the ActKind or LayerKind ordinal depending on IsActivation;
// it is assigned once at build time and consumed thereafter only as data.
type Entry struct {
	Position     int64
	IsActivation bool
	Kind         int
	Bounds       Bounds
	Workload     float64
	Params       float64
}

// #endregion entry

// #region catalog

// Catalog is the ordered sequence of decision points for one episode.
// All activations precede all compute layers; NumActs is the split index.
// Read-only during an episode, rebuilt on every reset.
type Catalog struct {
	Entries []Entry
	NumActs int
}

// Len returns the number of decision points.
func (c Catalog) Len() int { return len(c.Entries) }

// Positions returns the graph positions in catalog order.
func (c Catalog) Positions() []int64 {
	out := make([]int64, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Position
	}
	return out
}

// Bounds returns the per-entry bit-width intervals in catalog order.
func (c Catalog) Bounds() []Bounds {
	out := make([]Bounds, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Bounds
	}
	return out
}

// MinWidths returns a strategy with every entry at its lower bound.
func (c Catalog) MinWidths() []int {
	out := make([]int, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Bounds.Lo
	}
	return out
}

// #endregion catalog
