package gateway

import "github.com/google/uuid"

// ChargeRequest carries everything a provider needs to attempt a charge.
type ChargeRequest struct {
	PaymentID    uuid.UUID
	OrderID      string
	Amount       int64
	Currency     string
	Description  string
	CustomerName string
	Email        string
}

// ChargeResult is the provider's verdict. Reference is the provider-side
// transaction id or token, kept on the payment row for reconciliation.
type ChargeResult struct {
	Success   bool
	Reference string
	RawDetail map[string]any
}

// PaymentGateway abstracts the charge provider so payments can run
// against the sandbox in development and Midtrans in production.
type PaymentGateway interface {
	Name() string
	Charge(req ChargeRequest) (*ChargeResult, error)
}
