package payment

import "context"

// Intent is the result of creating a payment intent with the gateway. The
// client secret is handed back to the browser to confirm the charge.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with an external payment processor.
// Amount is expressed in minor currency units (cents).
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}
