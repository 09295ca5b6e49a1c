package validation

// PaymentIntentRequest mirrors the fields needed for intent validation.
type PaymentIntentRequest struct {
	Price float64
}

// ValidatePaymentIntentRequest validates a payment-intent creation request.
func ValidatePaymentIntentRequest(req PaymentIntentRequest) []FieldError {
	var errs []FieldError

	if req.Price <= 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must be greater than zero"})
	}

	return errs
}
