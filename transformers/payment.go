package transformers

import (
	"github.com/shopfront/paypal.express.api/models"
)

// PaymentTransformer transforms payments between database and domain models
type PaymentTransformer struct{}

// TransformToDB transforms a payment domain model into the database model
func (pt PaymentTransformer) TransformToDB(payment models.Payment) models.PaymentDB {
	return models.PaymentDB{
		ID:              payment.ID,
		OrderID:         payment.OrderID,
		PaymentMethodID: payment.PaymentMethodID,
		Amount:          payment.Amount.StringFixed(2),
		Currency:        payment.Currency,
		State:           string(payment.State),
		Source:          payment.Source,
		TransactionID:   payment.TransactionID,
		CreatedAt:       payment.CreatedAt,
	}
}

// TransformToDomain transforms a payment database model into the domain model
func (pt PaymentTransformer) TransformToDomain(db models.PaymentDB) (*models.Payment, error) {
	amount, err := parseAmount("payment amount", db.Amount)
	if err != nil {
		return nil, err
	}

	return &models.Payment{
		ID:              db.ID,
		OrderID:         db.OrderID,
		PaymentMethodID: db.PaymentMethodID,
		Amount:          amount,
		Currency:        db.Currency,
		State:           models.PaymentState(db.State),
		Source:          db.Source,
		TransactionID:   db.TransactionID,
		CreatedAt:       db.CreatedAt,
	}, nil
}
