package dose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllModelsZeroAtZeroDose(t *testing.T) {
	for _, d := range Models() {
		r, err := Curve{Model: d.ID}.Risk(0)
		require.NoError(t, err, "model %s", d.ID)
		assert.Zero(t, r, "model %s should report zero risk at zero dose", d.ID)
	}
}

func TestLNTIsLinear(t *testing.T) {
	c := Curve{Model: LinearNoThreshold}
	for _, d := range []float64{0, 0.5, 1, 7, 42, 100, 250} {
		r1, err := c.Risk(d)
		require.NoError(t, err)
		r2, err := c.Risk(2 * d)
		require.NoError(t, err)
		assert.InDelta(t, 2*r1, r2, 1e-12, "risk(2·%v)", d)
	}
	r, err := c.Risk(100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

func TestLinearThresholdBoundary(t *testing.T) {
	c := Curve{Model: LinearThreshold}
	for _, d := range []float64{0, 10, 25, 49.999} {
		r, err := c.Risk(d)
		require.NoError(t, err)
		assert.Zero(t, r, "below the 50 mSv threshold, dose %v", d)
	}
	r, err := c.Risk(50)
	require.NoError(t, err)
	assert.Zero(t, r, "risk at the threshold itself")

	r, err = c.Risk(60)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, r, 1e-12)
}

func TestLinearThresholdOverride(t *testing.T) {
	c := Curve{Model: LinearThreshold, Threshold: 10}
	r, err := c.Risk(9.9)
	require.NoError(t, err)
	assert.Zero(t, r)

	r, err = c.Risk(30)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, r, 1e-12)
}

func TestHormesisBranches(t *testing.T) {
	c := Curve{Model: Hormesis}

	r, err := c.Risk(10)
	require.NoError(t, err)
	assert.InDelta(t, -0.03, r, 1e-12, "low branch is beneficial at 10 mSv")

	// The boundary belongs to the high branch; the jump from the left limit
	// (≈ -0.02) to 0.2 is part of the published formulas.
	r, err = c.Risk(20)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, r, 1e-12)

	left, err := c.Risk(19.999999)
	require.NoError(t, err)
	assert.Less(t, left, 0.0, "left of the boundary the low branch still applies")
}

func TestSupraAndQuadraticMonotonic(t *testing.T) {
	grid, err := Grid(0, 100, 100)
	require.NoError(t, err)

	for _, m := range []Model{SupraLinear, LinearQuadratic} {
		series, err := Curve{Model: m}.Series(grid)
		require.NoError(t, err)
		for i := 1; i < len(series); i++ {
			assert.GreaterOrEqual(t, series[i], series[i-1],
				"model %s must be non-decreasing at grid index %d", m, i)
		}
	}
}

func TestAllModelsTotalOverDisplayRange(t *testing.T) {
	grid, err := Grid(0, 100, 100)
	require.NoError(t, err)

	for _, d := range Models() {
		series, err := Curve{Model: d.ID}.Series(grid)
		require.NoError(t, err, "model %s", d.ID)
		require.Len(t, series, len(grid))
		for i, r := range series {
			assert.False(t, math.IsNaN(r) || math.IsInf(r, 0),
				"model %s produced a non-finite value at dose %v", d.ID, grid[i])
		}
	}
}

func TestNegativeDoseRejected(t *testing.T) {
	for _, d := range Models() {
		_, err := Curve{Model: d.ID}.Risk(-1)
		assert.ErrorIs(t, err, ErrNegativeDose, "model %s", d.ID)
	}
	_, err := Curve{Model: LinearNoThreshold}.Series([]float64{0, 5, -3})
	assert.ErrorIs(t, err, ErrNegativeDose)
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("hormesis")
	require.NoError(t, err)
	assert.Equal(t, Hormesis, m)

	_, err = ParseModel("sigmoid")
	assert.ErrorIs(t, err, ErrUnknownModel)

	_, err = Curve{Model: Model("sigmoid")}.Risk(1)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestGrid(t *testing.T) {
	grid, err := Grid(0, 100, 100)
	require.NoError(t, err)
	require.Len(t, grid, 100)
	assert.Zero(t, grid[0])
	assert.Equal(t, 100.0, grid[99])

	_, err = Grid(-1, 100, 100)
	assert.ErrorIs(t, err, ErrNegativeDose)

	_, err = Grid(10, 5, 100)
	assert.Error(t, err)

	_, err = Grid(0, 100, 1)
	assert.Error(t, err)
}
