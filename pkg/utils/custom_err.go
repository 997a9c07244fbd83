package utils

import "errors"

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrGatewayFailure       = errors.New("payment gateway failure")
	ErrUnknownGatewayStatus = errors.New("unknown gateway transaction status")
	ErrDatabaseError        = errors.New("database error")
)
