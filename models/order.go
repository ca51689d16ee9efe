package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutState is the position of an order in the checkout workflow
type CheckoutState string

// Checkout states in the order an order passes through them
const (
	StateCart     CheckoutState = "cart"
	StateAddress  CheckoutState = "address"
	StateDelivery CheckoutState = "delivery"
	StatePayment  CheckoutState = "payment"
	StateConfirm  CheckoutState = "confirm"
	StateComplete CheckoutState = "complete"
)

// Adjustment categories
const (
	AdjustmentTax       = "tax"
	AdjustmentShipping  = "shipping"
	AdjustmentPromotion = "promotion"
)

// Order is the shopper's purchase with amounts parsed into decimals
type Order struct {
	ID                 string
	Number             string
	Email              string
	Currency           string
	State              CheckoutState
	Total              decimal.Decimal
	ShipTotal          decimal.Decimal
	AdditionalTaxTotal decimal.Decimal
	LineItems          []LineItem
	Adjustments        []Adjustment
	BillAddress        *Address
	ShipAddress        *Address
	PayPalToken        string
	CompletedAt        time.Time
}

// LineItem is a product line on an order
type LineItem struct {
	ProductName string
	SKU         string
	Quantity    int
	Price       decimal.Decimal
}

// Adjustment is a charge or discount applied to an order
type Adjustment struct {
	Label    string
	Amount   decimal.Decimal
	Eligible bool
	Category string
	SourceID string
	// Included adjustments are already part of an item price, e.g. VAT
	Included bool
}

// Address is a postal address
type Address struct {
	FirstName  string
	LastName   string
	Address1   string
	Address2   string
	City       string
	Zipcode    string
	Phone      string
	StateName  string
	CountryISO string
}

// FullName joins first and last name
func (a *Address) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// IsComplete reports whether the order has finished checkout
func (o *Order) IsComplete() bool {
	return o.State == StateComplete
}

// IsAdditional reports whether the adjustment is charged on top of the item prices
func (a Adjustment) IsAdditional() bool {
	return !a.Included
}

// CloneShippingAddress copies the ship address into the bill address
func (o *Order) CloneShippingAddress() {
	if o.ShipAddress == nil {
		return
	}
	bill := *o.ShipAddress
	o.BillAddress = &bill
}
