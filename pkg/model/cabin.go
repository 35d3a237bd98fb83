package model

// Cabin is immutable reference data describing one rentable unit. The catalog
// is seeded by the migration job and never mutated by the API.
type Cabin struct {
	ID            string   `json:"id" bson:"_id" validate:"required"`
	Name          string   `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`
	Capacity      int      `json:"capacity" bson:"capacity" validate:"required,min=1"`
	PricePerNight float64  `json:"price_per_night" bson:"price_per_night" validate:"required,gt=0"`
	Services      []string `json:"services" bson:"services"`
	Images        []string `json:"images" bson:"images"`
}
