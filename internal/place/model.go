package place

import (
	"time"

	"github.com/google/uuid"
)

// Place represents a row in the places table.
type Place struct {
	ID            uuid.UUID
	Name          string
	Category      string
	Description   string
	OldPrice      float64
	NewPrice      float64
	Rating        float64
	Stock         int
	StockQuantity int
	Featured      bool
	Offer         bool
	Brand         string
	UnitOfMeasure string
	Img           string
	CreatedAt     time.Time
}

// UpdateFields is the fixed field-set replaced by a listing patch. The
// endpoint overwrites every listed field rather than merging.
type UpdateFields struct {
	Name          string
	Category      string
	Description   string
	OldPrice      float64
	NewPrice      float64
	Rating        float64
	Stock         int
	StockQuantity int
	Featured      bool
	Offer         bool
	Brand         string
	UnitOfMeasure string
	Img           string
}
