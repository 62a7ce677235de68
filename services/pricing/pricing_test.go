package pricing

import (
	"testing"

	"summitos/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTripPrice_Tiers(t *testing.T) {
	tests := []struct {
		name        string
		distance    float64
		wantMileage float64
		wantTotal   float64
	}{
		{name: "zero distance", distance: 0, wantMileage: 0, wantTotal: 15.00},
		{name: "within base tier", distance: 4.9, wantMileage: 0, wantTotal: 15.00},
		{name: "base tier boundary", distance: 5.0, wantMileage: 0, wantTotal: 15.00},
		{name: "tier one", distance: 10, wantMileage: 8.75, wantTotal: 23.75},
		{name: "tier one boundary", distance: 20, wantMileage: 26.25, wantTotal: 41.25},
		{name: "tier two", distance: 45, wantMileage: 57.50, wantTotal: 72.50},
		{name: "long haul", distance: 80, wantMileage: 101.25, wantTotal: 116.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTripPrice(models.TripParams{DistanceMiles: tt.distance})
			assert.Equal(t, 15.00, got.BaseFare)
			assert.Equal(t, tt.wantMileage, got.MileageCharge)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestCalculateTripPrice_NegativeDistanceClamps(t *testing.T) {
	got := CalculateTripPrice(models.TripParams{DistanceMiles: -12})
	assert.Equal(t, 15.00, got.BaseFare)
	assert.Equal(t, 0.00, got.MileageCharge)
	assert.Equal(t, 15.00, got.Total)
}

func TestCalculateTripPrice_StopFee(t *testing.T) {
	for stops := 0; stops <= 5; stops++ {
		got := CalculateTripPrice(models.TripParams{DistanceMiles: 3, StopCount: stops})
		assert.Equal(t, 5.00*float64(stops), got.StopFee)
	}
}

func TestCalculateTripPrice_SurchargeIsFlat(t *testing.T) {
	with := CalculateTripPrice(models.TripParams{DistanceMiles: 30, IsSurchargeZone: true})
	without := CalculateTripPrice(models.TripParams{DistanceMiles: 30})
	assert.Equal(t, 15.00, with.SurchargeFee)
	assert.Equal(t, 0.00, without.SurchargeFee)
	assert.Equal(t, with.Total, without.Total+15.00)
}

func TestCalculateTripPrice_FractionalWait(t *testing.T) {
	got := CalculateTripPrice(models.TripParams{DistanceMiles: 2, WaitTimeHours: 0.5})
	assert.Equal(t, 10.00, got.WaitFee)
	assert.Equal(t, 25.00, got.Total)
}

func TestCalculateTripPrice_TotalIsSumOfRoundedFields(t *testing.T) {
	// A distance that produces a sub-cent mileage value; the field must be
	// rounded before it enters the total.
	got := CalculateTripPrice(models.TripParams{DistanceMiles: 7.003, StopCount: 1, WaitTimeHours: 0.25})
	sum := got.BaseFare + got.MileageCharge + got.StopFee + got.SurchargeFee + got.WaitFee
	assert.InDelta(t, sum, got.Total, 0.0001)
}
