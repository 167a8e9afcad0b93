// Package dose evaluates the five illustrative dose-response models shown on
// the site. Every model is a pure function from a dose in millisieverts to a
// dimensionless relative risk; nothing here holds state or performs I/O.
package dose

import (
	"errors"
	"fmt"
	"math"
)

// DefaultThreshold is the dose (mSv) below which the linear-threshold model
// reports zero risk, unless overridden per curve.
const DefaultThreshold = 50.0

// Model identifies one of the five illustrative dose-response models. The set
// is closed: every Model value outside the constants below is invalid.
type Model string

const (
	SupraLinear       Model = "supra_linear"
	LinearNoThreshold Model = "lnt"
	LinearQuadratic   Model = "linear_quadratic"
	Hormesis          Model = "hormesis"
	LinearThreshold   Model = "linear_threshold"
)

var (
	// ErrNegativeDose is returned when a dose below zero reaches an
	// evaluator. The formulas themselves are defined over all reals, but a
	// negative dose has no physical meaning and is rejected rather than
	// silently producing a nonsensical risk value.
	ErrNegativeDose = errors.New("dose must be non-negative")

	// ErrUnknownModel is returned when a Model value is not one of the five
	// defined models.
	ErrUnknownModel = errors.New("unknown dose-response model")
)

// Descriptor carries the display metadata for one model.
type Descriptor struct {
	ID          Model  `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// descriptors is ordered for display; the chart legend follows this order.
var descriptors = []Descriptor{
	{
		ID:          SupraLinear,
		Label:       "Supra-linear",
		Description: "Risk rises faster than dose even at low exposures: risk = 0.015 × dose^1.5.",
	},
	{
		ID:          LinearNoThreshold,
		Label:       "Linear No-Threshold (LNT)",
		Description: "Risk is strictly proportional to dose with no safe floor: risk = 0.01 × dose.",
	},
	{
		ID:          LinearQuadratic,
		Label:       "Linear-Quadratic",
		Description: "A linear term dominates at low dose with a quadratic contribution at higher dose: risk = 0.005 × dose + 0.0001 × dose².",
	},
	{
		ID:          Hormesis,
		Label:       "Hormesis",
		Description: "Low doses are modelled as mildly beneficial before risk turns positive; above 20 mSv risk follows 0.01 × dose.",
	},
	{
		ID:          LinearThreshold,
		Label:       "Linear Threshold",
		Description: "No risk below a threshold dose (default 50 mSv), then linear: risk = 0.01 × (dose − threshold).",
	},
}

// Models returns the descriptors of all five models in display order.
func Models() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// ParseModel maps a wire identifier to a Model.
func ParseModel(s string) (Model, error) {
	m := Model(s)
	for _, d := range descriptors {
		if d.ID == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// supraLinear computes risk = 0.015 * dose^1.5.
func supraLinear(d float64) float64 {
	return 0.015 * math.Pow(d, 1.5)
}

// linearNoThreshold computes risk = 0.01 * dose.
func linearNoThreshold(d float64) float64 {
	return 0.01 * d
}

// linearQuadratic computes risk = 0.005*dose + 0.0001*dose^2.
func linearQuadratic(d float64) float64 {
	return 0.005*d + 0.0001*d*d
}

// hormesis is piecewise: -0.005*dose + 0.0002*dose^2 below 20 mSv, 0.01*dose
// at and above it. The derivative (and the value) jump at the 20 mSv
// boundary; the source formulas are a pedagogical simplification and the
// discontinuity is kept as-is rather than smoothed. The low branch is
// negative (beneficial) for small doses.
func hormesis(d float64) float64 {
	if d < 20 {
		return -0.005*d + 0.0002*d*d
	}
	return 0.01 * d
}

// linearThreshold is zero below the threshold, then 0.01*(dose-threshold).
func linearThreshold(d, threshold float64) float64 {
	if d < threshold {
		return 0
	}
	return 0.01 * (d - threshold)
}

// Curve binds a model to its parameters. Threshold is only consulted by the
// linear-threshold model; zero means DefaultThreshold.
type Curve struct {
	Model     Model
	Threshold float64
}

func (c Curve) threshold() float64 {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return DefaultThreshold
}

// Risk evaluates the curve at a single dose in mSv. It errors on a negative
// dose or an unknown model; for any non-negative dose every model is total
// and side-effect free.
func (c Curve) Risk(d float64) (float64, error) {
	if d < 0 || math.IsNaN(d) {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeDose, d)
	}
	switch c.Model {
	case SupraLinear:
		return supraLinear(d), nil
	case LinearNoThreshold:
		return linearNoThreshold(d), nil
	case LinearQuadratic:
		return linearQuadratic(d), nil
	case Hormesis:
		return hormesis(d), nil
	case LinearThreshold:
		return linearThreshold(d, c.threshold()), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownModel, c.Model)
	}
}

// Series evaluates the curve elementwise over an ordered dose grid. The
// result has the same length and order as the input.
func (c Curve) Series(grid []float64) ([]float64, error) {
	out := make([]float64, len(grid))
	for i, d := range grid {
		r, err := c.Risk(d)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// Grid produces points evenly spaced doses from from to to inclusive. The
// default display grid is Grid(0, 100, 100).
func Grid(from, to float64, points int) ([]float64, error) {
	if from < 0 {
		return nil, fmt.Errorf("%w: grid start %v", ErrNegativeDose, from)
	}
	if to < from {
		return nil, fmt.Errorf("grid end %v is below start %v", to, from)
	}
	if points < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", points)
	}
	step := (to - from) / float64(points-1)
	grid := make([]float64, points)
	for i := range grid {
		grid[i] = from + float64(i)*step
	}
	// guard against float drift on the last point
	grid[points-1] = to
	return grid, nil
}
