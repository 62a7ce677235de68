package models

// TripType distinguishes a single leg from an out-and-back journey.
type TripType string

const (
	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
)

// TripRequest is the caller-supplied description of a trip to be quoted.
// Layover hours apply to round trips only; the simple wait flag applies to
// one-way trips only and stands for a flat one-hour wait.
type TripRequest struct {
	Pickup       string   `json:"pickup"`
	Dropoff      string   `json:"dropoff"`
	Stops        []string `json:"stops,omitempty"`
	ReturnStops  []string `json:"returnStops,omitempty"`
	TripType     TripType `json:"tripType"`
	LayoverHours float64  `json:"layoverHours,omitempty"`
	SimpleWait   bool     `json:"simpleWait,omitempty"`
}

// TripParams is the aggregated pricing input. DistanceMiles already includes
// round-trip doubling and the per-stop detour allowance.
type TripParams struct {
	DistanceMiles   float64
	StopCount       int
	IsSurchargeZone bool
	WaitTimeHours   float64
}

// QuoteDebug carries resolved-route diagnostics alongside a breakdown.
type QuoteDebug struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	LegMiles        string `json:"legMiles"`
	Duration        string `json:"duration"`
	IsSurchargeZone bool   `json:"isSurchargeZone"`
	KeySource       string `json:"keySource,omitempty"`
}

// PriceBreakdown itemizes a quote. Every fee field is rounded to cents
// before Total is summed, so Total always equals the sum of the fields.
type PriceBreakdown struct {
	BaseFare      float64     `bson:"base_fare" json:"baseFare"`
	MileageCharge float64     `bson:"mileage_charge" json:"mileageCharge"`
	StopFee       float64     `bson:"stop_fee" json:"stopFee"`
	SurchargeFee  float64     `bson:"surcharge_fee" json:"surchargeFee"`
	WaitFee       float64     `bson:"wait_fee" json:"waitFee"`
	Total         float64     `bson:"total" json:"total"`
	Distance      float64     `bson:"distance,omitempty" json:"distance,omitempty"`
	Debug         *QuoteDebug `bson:"-" json:"debug,omitempty"`
}
