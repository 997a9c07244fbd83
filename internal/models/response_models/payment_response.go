package response_models

type CreateTransactionResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
	OrderID     string `json:"orderId"`
}

// ClientConfigResponse is what the frontend needs to run the hosted checkout:
// the gateway's publishable key and the pages the customer is sent back to.
type ClientConfigResponse struct {
	ClientKey  string `json:"clientKey"`
	Production bool   `json:"production"`
	FinishURL  string `json:"finishUrl"`
	ErrorURL   string `json:"errorUrl"`
	PendingURL string `json:"pendingUrl"`
}
