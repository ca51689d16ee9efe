package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/models"
	"github.com/shopspring/decimal"
)

const (
	itemCategoryPhysical = "Physical"
	paymentActionSale    = "Sale"
	defaultLandingPage   = "Billing"
)

// CallbackURLs are the storefront URLs PayPal sends the shopper back to
type CallbackURLs struct {
	Return string
	Cancel string
}

// ShippingPromotion takes a flat discount off the shipping total sent to PayPal when an eligible
// adjustment from the promotion is present on the order. An empty SourceID disables it.
type ShippingPromotion struct {
	SourceID string
	Discount decimal.Decimal
}

// ExpressRequestBuilder builds express checkout requests from orders
type ExpressRequestBuilder struct {
	ShippingPromotion  ShippingPromotion
	ShippingMethodName string
}

// NewExpressRequestBuilder creates a request builder from the service config
func NewExpressRequestBuilder(cfg config.Config) (*ExpressRequestBuilder, error) {
	discount := decimal.Zero
	if cfg.FreeShippingDiscount != "" {
		var err error
		discount, err = decimal.NewFromString(cfg.FreeShippingDiscount)
		if err != nil {
			return nil, fmt.Errorf("free shipping discount [%s] format incorrect", cfg.FreeShippingDiscount)
		}
	}

	return &ExpressRequestBuilder{
		ShippingPromotion: ShippingPromotion{
			SourceID: cfg.FreeShippingPromotionID,
			Discount: discount,
		},
		ShippingMethodName: cfg.ShippingMethodName,
	}, nil
}

// Build assembles the express checkout request for an order
func (b *ExpressRequestBuilder) Build(order *models.Order, method *models.PaymentMethodDB, urls CallbackURLs) models.ExpressCheckoutRequest {
	items := LineItems(order)
	items = append(items, AdjustmentItems(order)...)

	return models.ExpressCheckoutRequest{
		InvoiceID:      order.Number,
		BuyerEmail:     order.Email,
		ReturnURL:      urls.Return,
		CancelURL:      urls.Cancel,
		SolutionType:   valueOrDefault(method.Preferences.Solution, models.SolutionMark),
		LandingPage:    valueOrDefault(method.Preferences.LandingPage, defaultLandingPage),
		LogoURL:        method.Preferences.LogoURL,
		NoShipping:     1,
		PaymentDetails: b.PaymentDetails(order, method, items),
	}
}

// LineItems maps the order's line items onto PayPal items
func LineItems(order *models.Order) []models.PaymentDetailsItem {
	items := make([]models.PaymentDetailsItem, 0, len(order.LineItems))
	for _, li := range order.LineItems {
		items = append(items, models.PaymentDetailsItem{
			Name:     li.ProductName,
			Number:   li.SKU,
			Quantity: li.Quantity,
			Amount: models.BasicAmount{
				CurrencyID: order.Currency,
				Value:      li.Price,
			},
			ItemCategory: itemCategoryPhysical,
		})
	}
	return items
}

// AdjustmentItems turns the order's eligible additional adjustments into single quantity items.
// PayPal rejects zero amount items, and tax and shipping go into their own totals.
func AdjustmentItems(order *models.Order) []models.PaymentDetailsItem {
	var items []models.PaymentDetailsItem
	for _, adj := range order.Adjustments {
		if !adj.Eligible || !adj.IsAdditional() {
			continue
		}

		log.Trace("adjustment total", log.Data{"order_number": order.Number, "label": adj.Label, "amount": adj.Amount.String()})

		if adj.Amount.IsZero() {
			continue
		}
		if adj.Category == models.AdjustmentTax || adj.Category == models.AdjustmentShipping {
			continue
		}

		items = append(items, models.PaymentDetailsItem{
			Name:     adj.Label,
			Quantity: 1,
			Amount: models.BasicAmount{
				CurrencyID: order.Currency,
				Value:      adj.Amount,
			},
		})
	}
	return items
}

// ItemSum is the sum of quantity times amount over the items
func ItemSum(items []models.PaymentDetailsItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount.Value.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// ShipmentSum is the shipping total sent to PayPal
func (b *ExpressRequestBuilder) ShipmentSum(order *models.Order) decimal.Decimal {
	if b.promotionApplies(order) {
		log.Trace("free shipping promotion is eligible", log.Data{"order_number": order.Number})
		return order.ShipTotal.Sub(b.ShippingPromotion.Discount)
	}
	return order.ShipTotal
}

func (b *ExpressRequestBuilder) promotionApplies(order *models.Order) bool {
	if b.ShippingPromotion.SourceID == "" {
		return false
	}
	for _, adj := range order.Adjustments {
		if adj.Eligible && adj.SourceID == b.ShippingPromotion.SourceID {
			return true
		}
	}
	return false
}

// PaymentDetails builds the totals block of the request. PayPal does not accept a zero item
// total, so in that case only the order total is sent and PayPal shows a plain "current purchase".
func (b *ExpressRequestBuilder) PaymentDetails(order *models.Order, method *models.PaymentMethodDB, items []models.PaymentDetailsItem) models.PaymentDetails {
	orderTotal := amount(order.Currency, order.Total)

	itemSum := ItemSum(items)
	if itemSum.IsZero() {
		return models.PaymentDetails{OrderTotal: orderTotal}
	}

	itemTotal := amount(order.Currency, itemSum)
	shippingTotal := amount(order.Currency, b.ShipmentSum(order))
	taxTotal := amount(order.Currency, order.AdditionalTaxTotal)

	return models.PaymentDetails{
		OrderTotal:     orderTotal,
		ItemTotal:      &itemTotal,
		ShippingTotal:  &shippingTotal,
		TaxTotal:       &taxTotal,
		ShipToAddress:  AddressOptions(order, method),
		LineItems:      items,
		ShippingMethod: b.ShippingMethodName,
		PaymentAction:  paymentActionSale,
	}
}

// AddressOptions is the bill address when the payment method collects the address up front
func AddressOptions(order *models.Order, method *models.PaymentMethodDB) models.ShipToAddress {
	if !method.AddressRequired() || order.BillAddress == nil {
		return models.ShipToAddress{}
	}

	bill := order.BillAddress
	return models.ShipToAddress{
		Name:            bill.FullName(),
		Street1:         bill.Address1,
		Street2:         bill.Address2,
		CityName:        bill.City,
		Phone:           bill.Phone,
		StateOrProvince: bill.StateName,
		Country:         bill.CountryISO,
		PostalCode:      bill.Zipcode,
	}
}

func amount(currency string, value decimal.Decimal) models.BasicAmount {
	return models.BasicAmount{CurrencyID: currency, Value: value}
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
