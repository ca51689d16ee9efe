package transformers

import (
	"fmt"

	"github.com/shopfront/paypal.express.api/models"
	"github.com/shopspring/decimal"
)

// OrderTransformer transforms orders between database and domain models
type OrderTransformer struct{}

// TransformToDomain transforms an order database model into the domain model, parsing all amounts
func (ot OrderTransformer) TransformToDomain(db models.OrderDB) (*models.Order, error) {
	order := &models.Order{
		ID:          db.ID,
		Number:      db.Number,
		Email:       db.Email,
		Currency:    db.Currency,
		State:       models.CheckoutState(db.State),
		BillAddress: addressToDomain(db.BillAddress),
		ShipAddress: addressToDomain(db.ShipAddress),
		PayPalToken: db.PayPalToken,
		CompletedAt: db.CompletedAt,
	}

	var err error
	if order.Total, err = parseAmount("total", db.Total); err != nil {
		return nil, err
	}
	if order.ShipTotal, err = parseAmount("ship_total", db.ShipTotal); err != nil {
		return nil, err
	}
	if order.AdditionalTaxTotal, err = parseAmount("additional_tax_total", db.AdditionalTaxTotal); err != nil {
		return nil, err
	}

	for _, li := range db.LineItems {
		price, err := parseAmount("line item price", li.Price)
		if err != nil {
			return nil, err
		}
		order.LineItems = append(order.LineItems, models.LineItem{
			ProductName: li.ProductName,
			SKU:         li.SKU,
			Quantity:    li.Quantity,
			Price:       price,
		})
	}

	for _, adj := range db.Adjustments {
		amount, err := parseAmount("adjustment amount", adj.Amount)
		if err != nil {
			return nil, err
		}
		order.Adjustments = append(order.Adjustments, models.Adjustment{
			Label:    adj.Label,
			Amount:   amount,
			Eligible: adj.Eligible,
			Category: adj.Category,
			SourceID: adj.SourceID,
			Included: adj.Included,
		})
	}

	return order, nil
}

// TransformToDB transforms an order domain model into the database model
func (ot OrderTransformer) TransformToDB(order models.Order) models.OrderDB {
	db := models.OrderDB{
		ID:                 order.ID,
		Number:             order.Number,
		Email:              order.Email,
		Currency:           order.Currency,
		State:              string(order.State),
		Total:              order.Total.StringFixed(2),
		ShipTotal:          order.ShipTotal.StringFixed(2),
		AdditionalTaxTotal: order.AdditionalTaxTotal.StringFixed(2),
		BillAddress:        addressToDB(order.BillAddress),
		ShipAddress:        addressToDB(order.ShipAddress),
		PayPalToken:        order.PayPalToken,
		CompletedAt:        order.CompletedAt,
	}

	for _, li := range order.LineItems {
		db.LineItems = append(db.LineItems, models.LineItemDB{
			ProductName: li.ProductName,
			SKU:         li.SKU,
			Quantity:    li.Quantity,
			Price:       li.Price.StringFixed(2),
		})
	}

	for _, adj := range order.Adjustments {
		db.Adjustments = append(db.Adjustments, models.AdjustmentDB{
			Label:    adj.Label,
			Amount:   adj.Amount.StringFixed(2),
			Eligible: adj.Eligible,
			Category: adj.Category,
			SourceID: adj.SourceID,
			Included: adj.Included,
		})
	}

	return db
}

func addressToDomain(a *models.AddressDB) *models.Address {
	if a == nil {
		return nil
	}
	address := models.Address(*a)
	return &address
}

func addressToDB(a *models.Address) *models.AddressDB {
	if a == nil {
		return nil
	}
	address := models.AddressDB(*a)
	return &address
}

// parseAmount treats an empty amount as zero
func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s [%s] format incorrect", field, value)
	}
	return d, nil
}
