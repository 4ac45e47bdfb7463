package entities

// SearchArea is a caller-specified geographic point plus radius used to query
// nearby theatres. One ranking request may carry several.
type SearchArea struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radiusKm"`
}

type Location struct {
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lon"`
	DistanceMeters float64 `json:"distanceMeters"`
	Address        string  `json:"address,omitempty"`
	City           string  `json:"city,omitempty"`
}

// Theatre identity is TheatreId; the locator deduplicates on it across areas.
type Theatre struct {
	TheatreId string   `json:"theatreId"`
	Name      string   `json:"name"`
	Location  Location `json:"location"`
}

type TheatresResponse struct {
	NearbyTheatres []Theatre `json:"nearbyTheatres"`
}
