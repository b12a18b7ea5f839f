package domain

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// VehicleClass is a ride-hailing product with its fare table.
type VehicleClass struct {
	Type        string
	DisplayName string
	BaseFare    float64
	PerKm       float64
	PerMinute   float64
	Capacity    int
	Description string
}

// PriceBand is a fare range in whole currency units.
type PriceBand struct {
	Low  int
	High int
}

// RideEstimate is the quote for one vehicle class.
type RideEstimate struct {
	Type            string
	DisplayName     string
	Price           PriceBand
	PickupMinutes   int
	SurgeMultiplier float64
	Capacity        int
	DistanceKm      float64
	DurationMinutes int
}

// SurgeInfo explains an active surge.
type SurgeInfo struct {
	Active     bool
	Multiplier float64
	Reason     string
}

// TransportQuote is the full estimate for a pickup/dropoff pair.
type TransportQuote struct {
	Options []RideEstimate
	Surge   *SurgeInfo // nil when no surge applies
}
