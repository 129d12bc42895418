package component

// Pickup is a collectible item counted toward the run quota.
type Pickup struct {
	Radius    float64
	Collected bool
	BobPhase  float64
}

var PickupComponent = NewComponent[Pickup]()

// Extraction marks the zone that ends a run once the quota is met.
type Extraction struct {
	Radius float64
}

var ExtractionComponent = NewComponent[Extraction]()
