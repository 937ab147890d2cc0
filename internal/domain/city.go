package domain

type CityKind string

const (
	CityMajor CityKind = "major"
	CityTown  CityKind = "town"
)

// City is a fixed reference row; matching is by name equality, not geocoding.
type City struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name" gorm:"uniqueIndex"`
	State string   `json:"state"`
	Kind  CityKind `json:"kind"`
}
