package exposure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name    string
		flights int
		xrays   int
		total   float64
		display string
	}{
		{"nothing selected", 0, 0, 0, "0.00 mSv"},
		{"mixed", 10, 5, 0.9, "0.90 mSv"},
		{"slider maxima", 50, 20, 4.0, "4.00 mSv"},
		{"flights only", 3, 0, 0.12, "0.12 mSv"},
		{"xrays only", 0, 7, 0.7, "0.70 mSv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est, err := Calculate(tc.flights, tc.xrays)
			require.NoError(t, err)
			assert.InDelta(t, tc.total, est.TotalMSv, 1e-12)
			assert.Equal(t, tc.display, est.Display())
			assert.InDelta(t, est.TotalMSv, est.FlightMSv+est.ChestXRayMSv, 1e-12)
		})
	}
}

func TestCalculateRejectsNegativeCounts(t *testing.T) {
	_, err := Calculate(-1, 0)
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = Calculate(0, -5)
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestCalculateIsStateless(t *testing.T) {
	first, err := Calculate(10, 5)
	require.NoError(t, err)
	// a second, different call must not be influenced by the first
	_, err = Calculate(50, 20)
	require.NoError(t, err)
	again, err := Calculate(10, 5)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestSourceTable(t *testing.T) {
	table := Sources()
	require.Len(t, table, 8)
	assert.Equal(t, "Background Radiation (Annual Avg)", table[0].Name)
	assert.Equal(t, 3.0, table[0].DoseMSv)

	d, ok := DoseFor(SourceFlight)
	require.True(t, ok)
	assert.Equal(t, 0.04, d)

	d, ok = DoseFor(SourceChestXRay)
	require.True(t, ok)
	assert.Equal(t, 0.1, d)

	_, ok = DoseFor("Banana (Single)")
	assert.False(t, ok)

	// mutating the returned slice must not touch the table
	table[0].DoseMSv = 999
	fresh := Sources()
	assert.Equal(t, 3.0, fresh[0].DoseMSv)
}
