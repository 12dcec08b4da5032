package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdealWeight(t *testing.T) {
	tests := []struct {
		name    string
		height  float64
		units   UnitSystem
		wantMin float64
		wantMax float64
		wantErr error
	}{
		{name: "170cm reference", height: 170, units: Metric, wantMin: 53.5, wantMax: 72.0},
		{name: "180cm", height: 180, units: Metric, wantMin: 59.9, wantMax: 80.7},
		{name: "67in reference", height: 67, units: Imperial, wantMin: 118.1, wantMax: 159.0},
		{name: "zero height", height: 0, units: Metric, wantErr: ErrInvalidInput},
		{name: "negative height", height: -60, units: Imperial, wantErr: ErrInvalidInput},
		{name: "NaN height", height: math.NaN(), units: Metric, wantErr: ErrInvalidInput},
		{name: "unknown units", height: 170, units: UnitSystem(-1), wantErr: ErrUnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IdealWeight(tt.height, tt.units)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantMin, got.Min, 1e-9)
			assert.InDelta(t, tt.wantMax, got.Max, 1e-9)
			assert.Equal(t, tt.units, got.Units)
		})
	}
}

func TestIdealWeight_BoundsAreNormalWeight(t *testing.T) {
	for height := 120.0; height <= 220; height += 5 {
		rng, err := ComputeIdealWeight(height, Metric)
		require.NoError(t, err)
		require.Less(t, rng.Min, rng.Max)

		// The range endpoints round-trip to the Normal-weight band.
		lowBMI, err := ComputeBMI(rng.Min, height, Metric)
		require.NoError(t, err)
		highBMI, err := ComputeBMI(rng.Max, height, Metric)
		require.NoError(t, err)
		assert.InDelta(t, IdealMinBMI, lowBMI.Value, roundTripTolerance, "height=%g", height)
		assert.InDelta(t, IdealMaxBMI, highBMI.Value, roundTripTolerance, "height=%g", height)
	}
}
