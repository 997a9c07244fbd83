package request_models

type CreateTransactionRequest struct {
	Amount    int64      `json:"amount" binding:"required,gt=0"`
	FirstName string     `json:"firstName" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	Phone     string     `json:"phone" binding:"required"`
	Items     []LineItem `json:"items" binding:"required,min=1,dive"`
}

type LineItem struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name"`
	Price int64  `json:"price" binding:"required,gt=0"`
	Qty   int32  `json:"qty" binding:"required,gt=0"`
}
