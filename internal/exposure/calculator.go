package exposure

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is returned when the calculator is given a negative
// activity count.
var ErrNegativeCount = errors.New("activity count must be non-negative")

// Estimate is the result of one calculator evaluation. It is computed fresh
// on every call and never stored.
type Estimate struct {
	Flights      int     `json:"flights"`
	ChestXRays   int     `json:"chest_xrays"`
	FlightMSv    float64 `json:"flight_msv"`
	ChestXRayMSv float64 `json:"chest_xray_msv"`
	TotalMSv     float64 `json:"total_msv"`
}

// Display renders the total the way the page shows it, to two decimals.
func (e Estimate) Display() string {
	return fmt.Sprintf("%.2f mSv", e.TotalMSv)
}

// Calculate sums the estimated annual dose for a number of cross-country
// flights and chest X-rays. Per-unit doses come from the reference table
// (0.04 mSv per flight, 0.1 mSv per chest X-ray). Any pair of non-negative
// counts yields a defined result; negative counts are rejected.
func Calculate(flights, chestXRays int) (Estimate, error) {
	if flights < 0 || chestXRays < 0 {
		return Estimate{}, fmt.Errorf("%w: flights=%d chest_xrays=%d", ErrNegativeCount, flights, chestXRays)
	}
	perFlight, ok := DoseFor(SourceFlight)
	if !ok {
		return Estimate{}, fmt.Errorf("source table is missing %q", SourceFlight)
	}
	perXRay, ok := DoseFor(SourceChestXRay)
	if !ok {
		return Estimate{}, fmt.Errorf("source table is missing %q", SourceChestXRay)
	}
	flightMSv := float64(flights) * perFlight
	xrayMSv := float64(chestXRays) * perXRay
	return Estimate{
		Flights:      flights,
		ChestXRays:   chestXRays,
		FlightMSv:    flightMSv,
		ChestXRayMSv: xrayMSv,
		TotalMSv:     flightMSv + xrayMSv,
	}, nil
}
