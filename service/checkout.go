package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopfront/paypal.express.api/dao"
	"github.com/shopfront/paypal.express.api/models"
	"github.com/shopfront/paypal.express.api/transformers"
)

// CheckoutService moves orders through the PayPal part of checkout
type CheckoutService struct {
	DAO dao.DAO
}

// GetOrder retrieves an order
func (service *CheckoutService) GetOrder(id string) (*models.Order, ResponseType, error) {
	orderDB, err := service.DAO.GetOrder(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order [%s]: [%v]", id, err)
	}
	if orderDB == nil {
		return nil, NotFound, fmt.Errorf("order [%s] not found", id)
	}

	order, err := transformers.OrderTransformer{}.TransformToDomain(*orderDB)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading order [%s]: [%v]", id, err)
	}

	return order, Success, nil
}

// GetPaymentMethod retrieves an active PayPal payment method with valid preferences
func (service *CheckoutService) GetPaymentMethod(id string) (*models.PaymentMethodDB, ResponseType, error) {
	method, err := service.DAO.GetPaymentMethod(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment method [%s]: [%v]", id, err)
	}
	if method == nil {
		return nil, NotFound, fmt.Errorf("payment method [%s] not found", id)
	}
	if !method.Active {
		return nil, NotFound, fmt.Errorf("payment method [%s] is not active", id)
	}

	validate := validator.New()
	if err = validate.Struct(method.Preferences); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid preferences on payment method [%s]: [%v]", id, err)
	}

	return method, Success, nil
}

// RecordExpressToken stores the token PayPal issued for the order's express checkout session
func (service *CheckoutService) RecordExpressToken(order *models.Order, token string) (ResponseType, error) {
	err := service.DAO.PatchOrder(order.ID, &models.OrderDB{PayPalToken: token})
	if err != nil {
		return Error, fmt.Errorf("error recording paypal token on order [%s]: [%v]", order.ID, err)
	}
	order.PayPalToken = token

	return Success, nil
}

// ConfirmPayment records the payment the shopper approved on PayPal and moves the order to confirm.
// A completed order is left untouched and no payment is returned.
func (service *CheckoutService) ConfirmPayment(order *models.Order, method *models.PaymentMethodDB, source models.ExpressCheckoutSession) (*models.Payment, ResponseType, error) {
	validate := validator.New()
	if err := validate.Struct(source); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid paypal callback for order [%s]: [%v]", order.ID, err)
	}

	if order.PayPalToken == "" || order.PayPalToken != source.Token {
		return nil, Forbidden, fmt.Errorf("paypal token [%s] does not belong to order [%s]", source.Token, order.ID)
	}

	if order.IsComplete() {
		return nil, Success, nil
	}

	payment, responseType, err := service.paymentForSession(order, method, source)
	if err != nil {
		return nil, responseType, err
	}

	if order.BillAddress == nil {
		order.CloneShippingAddress()
	}
	order.State = models.StateConfirm

	orderUpdate := transformers.OrderTransformer{}.TransformToDB(*order)
	if err = service.DAO.PatchOrder(order.ID, &orderUpdate); err != nil {
		return nil, Error, fmt.Errorf("error saving order [%s]: [%v]", order.ID, err)
	}

	log.Info("order confirmed with paypal", log.Data{"order_id": order.ID, "payment_id": payment.ID})

	return payment, Success, nil
}

// paymentForSession returns the payment already created for the session, or creates it
func (service *CheckoutService) paymentForSession(order *models.Order, method *models.PaymentMethodDB, source models.ExpressCheckoutSession) (*models.Payment, ResponseType, error) {
	existing, err := service.DAO.GetPaymentByToken(source.Token)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment for token [%s]: [%v]", source.Token, err)
	}

	if existing != nil {
		if existing.OrderID != order.ID {
			return nil, Forbidden, fmt.Errorf("paypal token [%s] already used by another order", source.Token)
		}
		payment, err := transformers.PaymentTransformer{}.TransformToDomain(*existing)
		if err != nil {
			return nil, Error, fmt.Errorf("error reading payment [%s]: [%v]", existing.ID, err)
		}
		return payment, Success, nil
	}

	payment := &models.Payment{
		ID:              uuid.NewString(),
		OrderID:         order.ID,
		PaymentMethodID: method.ID,
		Amount:          order.Total,
		Currency:        order.Currency,
		State:           models.PaymentCheckout,
		Source:          source,
		CreatedAt:       time.Now(),
	}

	paymentDB := transformers.PaymentTransformer{}.TransformToDB(*payment)
	if err = service.DAO.CreatePayment(&paymentDB); err != nil {
		return nil, Error, fmt.Errorf("error creating payment for order [%s]: [%v]", order.ID, err)
	}

	return payment, Success, nil
}

// CompleteOrder processes the order's outstanding payments and completes the order. Processing
// stops at the first payment that fails.
func (service *CheckoutService) CompleteOrder(ctx context.Context, order *models.Order, processor PaymentProcessor) ([]models.Payment, ResponseType, error) {
	if order.State != models.StateConfirm {
		return nil, InvalidData, fmt.Errorf("order [%s] is in state [%s], not confirm", order.ID, order.State)
	}

	paymentsDB, err := service.DAO.GetPaymentsByOrder(order.ID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payments for order [%s]: [%v]", order.ID, err)
	}

	var processed []models.Payment
	for _, paymentDB := range paymentsDB {
		if paymentDB.State != string(models.PaymentCheckout) {
			continue
		}

		payment, err := transformers.PaymentTransformer{}.TransformToDomain(paymentDB)
		if err != nil {
			return nil, Error, fmt.Errorf("error reading payment [%s]: [%v]", paymentDB.ID, err)
		}

		transactionID, err := processor.ProcessPayment(ctx, payment)
		if err != nil {
			log.Error(fmt.Errorf("error processing payment [%s]: [%v]", payment.ID, err), log.Data{"order_id": order.ID})
			if patchErr := service.DAO.PatchPayment(payment.ID, &models.PaymentDB{State: string(models.PaymentFailed)}); patchErr != nil {
				log.Error(patchErr, log.Data{"payment_id": payment.ID})
			}
			return nil, responseTypeForProcessingError(err), err
		}

		payment.State = models.PaymentCompleted
		payment.TransactionID = transactionID
		err = service.DAO.PatchPayment(payment.ID, &models.PaymentDB{State: string(payment.State), TransactionID: transactionID})
		if err != nil {
			return nil, Error, fmt.Errorf("error saving payment [%s]: [%v]", payment.ID, err)
		}

		processed = append(processed, *payment)
	}

	if len(processed) == 0 {
		return nil, InvalidData, fmt.Errorf("order [%s] has no payments to process", order.ID)
	}

	order.State = models.StateComplete
	order.CompletedAt = time.Now()

	err = service.DAO.PatchOrder(order.ID, &models.OrderDB{State: string(order.State), CompletedAt: order.CompletedAt})
	if err != nil {
		return nil, Error, fmt.Errorf("error completing order [%s]: [%v]", order.ID, err)
	}

	return processed, Success, nil
}

func responseTypeForProcessingError(err error) ResponseType {
	var declined *DeclinedError
	if errors.As(err, &declined) {
		return Declined
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable
	}

	return Error
}
