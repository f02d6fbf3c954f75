package models

// Major is a curriculum track (industry). Classes and subjects reference
// majors by id; matching MajorIDs is what ties a subject to a class.
type Major struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}
