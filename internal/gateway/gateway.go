package gateway

import "context"

// CheckoutRequest is everything the gateway needs to open a hosted checkout
// session for one order.
type CheckoutRequest struct {
	OrderID     string
	GrossAmount int64
	FirstName   string
	Email       string
	Phone       string
	Items       []CheckoutItem
}

type CheckoutItem struct {
	ID    string
	Name  string
	Price int64
	Qty   int32
}

// CheckoutSession is the gateway's handle for a created hosted transaction.
type CheckoutSession struct {
	Token       string
	RedirectURL string
}

// Notification is the verified view of an asynchronous status push. Raw keeps
// the gateway's authoritative response bytes for audit storage.
type Notification struct {
	OrderID           string
	TransactionStatus string
	FraudStatus       string
	PaymentType       string
	TransactionTime   string
	Raw               []byte
}

// Client defines the payment provider surface the service depends on.
type Client interface {
	// CreateHostedTransaction opens a checkout session the customer completes
	// on the gateway's own pages.
	CreateHostedTransaction(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// VerifyNotification authenticates an inbound webhook payload against the
	// gateway and returns the authoritative transaction state. The payload
	// itself is never trusted for status; it only identifies the order.
	VerifyNotification(ctx context.Context, payload []byte) (*Notification, error)
}
