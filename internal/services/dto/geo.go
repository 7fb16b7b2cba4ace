package dto

// MapCreatorResponse is a map search hit: the card view annotated with
// coordinates and the distance from the reference point.
type MapCreatorResponse struct {
	CreatorSummary
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKM float64 `json:"distance_km"`
}

type MapSearchResponse struct {
	Creators []*MapCreatorResponse `json:"creators"`
	Total    int                   `json:"total"`
	RadiusKM float64               `json:"radius_km"`
}
