package models

import "github.com/shopspring/decimal"

// ExpressCheckoutRequest is the request sent to PayPal to start an express checkout session
type ExpressCheckoutRequest struct {
	InvoiceID      string
	BuyerEmail     string
	ReturnURL      string
	CancelURL      string
	SolutionType   string
	LandingPage    string
	LogoURL        string
	NoShipping     int
	PaymentDetails PaymentDetails
}

// PaymentDetails holds the totals and item breakdown of an express checkout request.
// Only OrderTotal is set when the items add up to zero.
type PaymentDetails struct {
	OrderTotal     BasicAmount
	ItemTotal      *BasicAmount
	ShippingTotal  *BasicAmount
	TaxTotal       *BasicAmount
	ShipToAddress  ShipToAddress
	LineItems      []PaymentDetailsItem
	ShippingMethod string
	PaymentAction  string
}

// HasBreakdown reports whether the item breakdown is included
func (pd PaymentDetails) HasBreakdown() bool {
	return pd.ItemTotal != nil
}

// PaymentDetailsItem is a single line of the PayPal order summary
type PaymentDetailsItem struct {
	Name         string
	Number       string
	Quantity     int
	Amount       BasicAmount
	ItemCategory string
}

// BasicAmount is an amount in a currency
type BasicAmount struct {
	CurrencyID string
	Value      decimal.Decimal
}

// ShipToAddress is the shipping address passed to PayPal
type ShipToAddress struct {
	Name            string
	Street1         string
	Street2         string
	CityName        string
	Phone           string
	StateOrProvince string
	Country         string
	PostalCode      string
}

// IsEmpty reports whether no address was supplied
func (a ShipToAddress) IsEmpty() bool {
	return a == ShipToAddress{}
}

// NVPResponse is the parsed reply from the PayPal classic NVP API
type NVPResponse struct {
	Ack           string
	ShortMessage  string
	LongMessage   string
	TransactionID string
}

// IsSuccess reports whether PayPal acknowledged the call
func (r *NVPResponse) IsSuccess() bool {
	return r.Ack == "Success" || r.Ack == "SuccessWithWarning"
}
