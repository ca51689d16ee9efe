package mappers

import (
	"strconv"
	"strings"

	"github.com/plutov/paypal/v4"
	"github.com/shopfront/paypal.express.api/models"
	"github.com/shopspring/decimal"
)

const itemCategoryPhysicalGoods = "PHYSICAL_GOODS"

// MapToPurchaseUnit maps an express checkout request onto a PayPal order purchase unit.
// The Orders API does not accept negative items, so discount pseudo-items are folded into the
// breakdown discount and a negative shipping sum into the shipping discount.
func MapToPurchaseUnit(request models.ExpressCheckoutRequest) paypal.PurchaseUnitRequest {
	details := request.PaymentDetails

	unit := paypal.PurchaseUnitRequest{
		ReferenceID: request.InvoiceID,
		InvoiceID:   request.InvoiceID,
		Amount: &paypal.PurchaseUnitAmount{
			Currency: details.OrderTotal.CurrencyID,
			Value:    formatAmount(details.OrderTotal.Value),
		},
	}

	if !details.HasBreakdown() {
		return unit
	}

	currency := details.OrderTotal.CurrencyID
	itemTotal := decimal.Zero
	discount := decimal.Zero

	for _, item := range details.LineItems {
		if item.Amount.Value.IsNegative() {
			discount = discount.Add(item.Amount.Value.Neg().Mul(decimal.NewFromInt(int64(item.Quantity))))
			continue
		}
		itemTotal = itemTotal.Add(item.Amount.Value.Mul(decimal.NewFromInt(int64(item.Quantity))))
		unit.Items = append(unit.Items, MapToItem(item))
	}

	breakdown := &paypal.PurchaseUnitAmountBreakdown{
		ItemTotal: money(currency, itemTotal),
	}
	if !discount.IsZero() {
		breakdown.Discount = money(currency, discount)
	}
	if details.ShippingTotal != nil {
		shipping := details.ShippingTotal.Value
		if shipping.IsNegative() {
			breakdown.Shipping = money(currency, decimal.Zero)
			breakdown.ShippingDiscount = money(currency, shipping.Neg())
		} else {
			breakdown.Shipping = money(currency, shipping)
		}
	}
	if details.TaxTotal != nil {
		breakdown.TaxTotal = money(currency, details.TaxTotal.Value)
	}
	unit.Amount.Breakdown = breakdown

	if !details.ShipToAddress.IsEmpty() {
		unit.Shipping = MapToShippingDetail(details.ShipToAddress)
	}

	return unit
}

// MapToItem maps a single express checkout item onto a PayPal order item
func MapToItem(item models.PaymentDetailsItem) paypal.Item {
	ppItem := paypal.Item{
		Name:       item.Name,
		SKU:        item.Number,
		Quantity:   strconv.Itoa(item.Quantity),
		UnitAmount: money(item.Amount.CurrencyID, item.Amount.Value),
	}
	if item.ItemCategory == "Physical" {
		ppItem.Category = itemCategoryPhysicalGoods
	}
	return ppItem
}

// MapToShippingDetail maps the express checkout address onto a PayPal shipping detail
func MapToShippingDetail(address models.ShipToAddress) *paypal.ShippingDetail {
	return &paypal.ShippingDetail{
		Name: &paypal.Name{
			FullName: address.Name,
		},
		Address: &paypal.ShippingDetailAddressPortable{
			AddressLine1: address.Street1,
			AddressLine2: address.Street2,
			AdminArea2:   address.CityName,
			AdminArea1:   address.StateOrProvince,
			PostalCode:   address.PostalCode,
			CountryCode:  address.Country,
		},
	}
}

// MapToApplicationContext maps the shopper journey options of the request. The user action is
// always PAY_NOW so PayPal shows the commit button.
func MapToApplicationContext(request models.ExpressCheckoutRequest) *paypal.ApplicationContext {
	shippingPreference := paypal.ShippingPreferenceNoShipping
	if !request.PaymentDetails.ShipToAddress.IsEmpty() {
		shippingPreference = paypal.ShippingPreferenceSetProvidedAddress
	}

	return &paypal.ApplicationContext{
		LandingPage:        strings.ToUpper(request.LandingPage),
		ShippingPreference: shippingPreference,
		UserAction:         paypal.UserActionPayNow,
		ReturnURL:          request.ReturnURL,
		CancelURL:          request.CancelURL,
	}
}

func money(currency string, value decimal.Decimal) *paypal.Money {
	return &paypal.Money{Currency: currency, Value: formatAmount(value)}
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}
