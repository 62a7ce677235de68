package pricing

import (
	"math"

	"summitos/models"
)

// Tiered mileage policy. The flat base covers the first baseMiles; tier one
// runs to tierOneMiles; everything past that bills at the long-haul rate.
const (
	baseFare     = 15.00
	baseMiles    = 5.0
	tierOneMiles = 20.0
	tierOneRate  = 1.75
	tierTwoRate  = 1.25

	stopFeeRate     = 5.00
	surchargeAmount = 15.00
	waitRatePerHour = 20.00
)

// round2 rounds to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateTripPrice computes the itemized fare for aggregated trip
// parameters. It is pure and never rejects input: a negative or missing
// distance clamps to the flat-base tier. Each fee is rounded to cents before
// the total is summed, so the total is always the exact sum of the fields.
func CalculateTripPrice(params models.TripParams) models.PriceBreakdown {
	distance := params.DistanceMiles
	if distance < 0 {
		distance = 0
	}

	var mileageCharge float64
	switch {
	case distance <= baseMiles:
		mileageCharge = 0
	case distance <= tierOneMiles:
		mileageCharge = (distance - baseMiles) * tierOneRate
	default:
		mileageCharge = (tierOneMiles-baseMiles)*tierOneRate + (distance-tierOneMiles)*tierTwoRate
	}

	stopFee := float64(params.StopCount) * stopFeeRate

	var surchargeFee float64
	if params.IsSurchargeZone {
		surchargeFee = surchargeAmount
	}

	waitFee := params.WaitTimeHours * waitRatePerHour

	breakdown := models.PriceBreakdown{
		BaseFare:      round2(baseFare),
		MileageCharge: round2(mileageCharge),
		StopFee:       round2(stopFee),
		SurchargeFee:  round2(surchargeFee),
		WaitFee:       round2(waitFee),
		Distance:      distance,
	}
	breakdown.Total = round2(breakdown.BaseFare + breakdown.MileageCharge +
		breakdown.StopFee + breakdown.SurchargeFee + breakdown.WaitFee)
	return breakdown
}
