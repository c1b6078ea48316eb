package models

// GeoPoint is a GeoJSON point. Coordinates are ordered [longitude, latitude]
// per the GeoJSON convention MongoDB expects. API-facing fields named
// latitude/longitude always carry the true latitude/longitude; only the
// stored coordinate pair uses the longitude-first order.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint creates a GeoJSON point from a longitude/latitude pair
func NewGeoPoint(longitude, latitude float64) *GeoPoint {
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// Longitude returns the X coordinate of the point
func (p *GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Latitude returns the Y coordinate of the point
func (p *GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// LocationRequest represents the payload for setting a person's location.
// Pointers distinguish a missing field from a legitimate zero coordinate.
// Coordinate ranges are deliberately not checked here; range validation is
// enforced on the search endpoint.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// LocationResult is one entry of a proximity search response
type LocationResult struct {
	ReferenceID  int64   `json:"referenceId"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DistanceInKm float64 `json:"distanceInKm"`
	Bio          string  `json:"bio"`
}

// NearbyQuery is the query-string contract of the nearby search endpoint
type NearbyQuery struct {
	Lat        *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon        *float64 `form:"lon" binding:"required,min=-180,max=180"`
	RadiusInKm *float64 `form:"radiusInKm" binding:"required,min=0,max=20000"`
	Page       *int     `form:"page" binding:"omitempty,min=1"`
	Limit      *int     `form:"limit" binding:"omitempty,min=1,max=1000"`
}
