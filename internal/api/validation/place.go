package validation

import "strings"

// PlaceRequest mirrors the fields needed for listing validation.
type PlaceRequest struct {
	Name     string
	NewPrice float64
	Rating   float64
}

// ValidatePlaceRequest validates the fields of a create or update listing request.
func ValidatePlaceRequest(req PlaceRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if req.NewPrice < 0 {
		errs = append(errs, FieldError{Field: "newPrice", Message: "newPrice must not be negative"})
	}
	if req.Rating < 0 || req.Rating > 5 {
		errs = append(errs, FieldError{Field: "rating", Message: "rating must be between 0 and 5"})
	}

	return errs
}
