package models

// Checkout solution types. Sole lets shoppers pay without a PayPal account
// and requires the shipping address up front.
const (
	SolutionMark = "Mark"
	SolutionSole = "Sole"
)

// PaymentMethodDB is a configured PayPal payment method
type PaymentMethodDB struct {
	ID          string                   `bson:"_id"`
	Name        string                   `bson:"name"`
	Active      bool                     `bson:"active"`
	ClientID    string                   `bson:"client_id,omitempty"`
	Secret      string                   `bson:"secret,omitempty"`
	Environment string                   `bson:"environment,omitempty"`
	Preferences PaymentMethodPreferences `bson:"preferences"`
}

// PaymentMethodPreferences are the shopper facing options for the PayPal journey
type PaymentMethodPreferences struct {
	Solution    string `bson:"solution,omitempty"     validate:"omitempty,oneof=Mark Sole"`
	LandingPage string `bson:"landing_page,omitempty" validate:"omitempty,oneof=Billing Login"`
	LogoURL     string `bson:"logo_url,omitempty"     validate:"omitempty,url"`
}

// AddressRequired reports whether PayPal must collect the shipping address up front
func (pm *PaymentMethodDB) AddressRequired() bool {
	return pm.Preferences.Solution == SolutionSole
}
