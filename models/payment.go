package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentState is the processing state of a payment
type PaymentState string

// Payment states
const (
	PaymentCheckout  PaymentState = "checkout"
	PaymentCompleted PaymentState = "completed"
	PaymentFailed    PaymentState = "failed"
)

// ExpressCheckoutSession identifies a PayPal authorisation returned to the storefront
type ExpressCheckoutSession struct {
	Token   string `bson:"token"    json:"token"    validate:"required"`
	PayerID string `bson:"payer_id" json:"payer_id" validate:"required"`
}

// Payment is a payment taken against an order
type Payment struct {
	ID              string
	OrderID         string
	PaymentMethodID string
	Amount          decimal.Decimal
	Currency        string
	State           PaymentState
	Source          ExpressCheckoutSession
	TransactionID   string
	CreatedAt       time.Time
}

// PaymentDB is a payment as stored in the database
type PaymentDB struct {
	ID              string                 `bson:"_id"`
	OrderID         string                 `bson:"order_id"`
	PaymentMethodID string                 `bson:"payment_method_id"`
	Amount          string                 `bson:"amount"`
	Currency        string                 `bson:"currency"`
	State           string                 `bson:"state"`
	Source          ExpressCheckoutSession `bson:"source"`
	TransactionID   string                 `bson:"transaction_id,omitempty"`
	CreatedAt       time.Time              `bson:"created_at"`
}
