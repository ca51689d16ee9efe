package models

import "time"

// OrderDB is an order as stored by the storefront. Amounts are decimal strings.
type OrderDB struct {
	ID                 string         `bson:"_id"`
	Number             string         `bson:"number"`
	Email              string         `bson:"email"`
	Currency           string         `bson:"currency"`
	State              string         `bson:"state"`
	Total              string         `bson:"total"`
	ShipTotal          string         `bson:"ship_total"`
	AdditionalTaxTotal string         `bson:"additional_tax_total"`
	LineItems          []LineItemDB   `bson:"line_items"`
	Adjustments        []AdjustmentDB `bson:"adjustments"`
	BillAddress        *AddressDB     `bson:"bill_address,omitempty"`
	ShipAddress        *AddressDB     `bson:"ship_address,omitempty"`
	PayPalToken        string         `bson:"paypal_token,omitempty"`
	CompletedAt        time.Time      `bson:"completed_at,omitempty"`
}

// LineItemDB is a single product line on an order
type LineItemDB struct {
	ProductName string `bson:"product_name"`
	SKU         string `bson:"sku"`
	Quantity    int    `bson:"quantity"`
	Price       string `bson:"price"`
}

// AdjustmentDB is a charge or credit applied to an order
type AdjustmentDB struct {
	Label    string `bson:"label"`
	Amount   string `bson:"amount"`
	Eligible bool   `bson:"eligible"`
	Category string `bson:"category"`
	SourceID string `bson:"source_id,omitempty"`
	Included bool   `bson:"included"`
}

// AddressDB is a postal address attached to an order
type AddressDB struct {
	FirstName  string `bson:"firstname"`
	LastName   string `bson:"lastname"`
	Address1   string `bson:"address1"`
	Address2   string `bson:"address2,omitempty"`
	City       string `bson:"city"`
	Zipcode    string `bson:"zipcode"`
	Phone      string `bson:"phone,omitempty"`
	StateName  string `bson:"state_name,omitempty"`
	CountryISO string `bson:"country_iso"`
}
