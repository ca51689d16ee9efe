package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"github.com/shopfront/paypal.express.api/mappers"
	"github.com/shopfront/paypal.express.api/models"
)

// PayPalSDK is an interface for all the PayPal client methods that will be used
// in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, paymentSource *paypal.PaymentSource, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

// PaymentProcessor takes the money for a confirmed payment and returns the provider's transaction id
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, payment *models.Payment) (string, error)
}

// DeclinedError is returned when PayPal refuses a request
type DeclinedError struct {
	Messages []string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("paypal declined the request: [%s]", e.Reasons())
}

// Reasons joins the messages returned by PayPal
func (e *DeclinedError) Reasons() string {
	return strings.Join(e.Messages, " ")
}

// ExpressCheckoutStart is the result of starting an express checkout session
type ExpressCheckoutStart struct {
	Token       string
	RedirectURL string
}

// PayPalService handles the specific functionality of integrating PayPal Express Checkout
type PayPalService struct {
	Client PayPalSDK
}

// SetExpressCheckout starts a PayPal session for the request and returns the URL to send the shopper to.
// It makes a single attempt.
func (pp *PayPalService) SetExpressCheckout(ctx context.Context, request models.ExpressCheckoutRequest) (*ExpressCheckoutStart, ResponseType, error) {
	log.Trace("performing PayPal request", log.Data{"invoice_id": request.InvoiceID, "order_total": request.PaymentDetails.OrderTotal.Value.String()})

	order, err := pp.Client.CreateOrder(
		ctx,
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{mappers.MapToPurchaseUnit(request)},
		nil,
		mappers.MapToApplicationContext(request),
	)
	if err != nil {
		responseType, err := classifyGatewayError(err)
		return nil, responseType, err
	}

	if order.Status != paypal.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", order.Status))
		return nil, Error, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	var approveURL string
	for _, link := range order.Links {
		if link.Rel == "approve" || link.Rel == "payer-action" {
			approveURL = link.Href
		}
	}
	if approveURL == "" {
		return nil, Error, fmt.Errorf("paypal order [%s] has no approve link", order.ID)
	}

	redirectURL, err := commitURL(approveURL)
	if err != nil {
		return nil, Error, fmt.Errorf("error parsing paypal approve link: [%v]", err)
	}

	return &ExpressCheckoutStart{Token: order.ID, RedirectURL: redirectURL}, Success, nil
}

// ProcessPayment captures the PayPal order behind the payment
func (pp *PayPalService) ProcessPayment(ctx context.Context, payment *models.Payment) (string, error) {
	res, err := pp.Client.CaptureOrder(ctx, payment.Source.Token, paypal.CaptureOrderRequest{})
	if err != nil {
		_, err = classifyGatewayError(err)
		return "", err
	}

	if res.Status != paypal.OrderStatusCompleted {
		return "", &DeclinedError{Messages: []string{fmt.Sprintf("capture status is %s", res.Status)}}
	}

	return captureID(res), nil
}

// captureID returns the id of the capture transaction, falling back to the order id when PayPal
// leaves the capture out of the response
func captureID(res *paypal.CaptureOrderResponse) string {
	for _, unit := range res.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, capture := range unit.Payments.Captures {
			if capture.ID != "" {
				return capture.ID
			}
		}
	}
	return res.ID
}

// classifyGatewayError separates PayPal refusals from connectivity failures
func classifyGatewayError(err error) (ResponseType, error) {
	var errorResponse *paypal.ErrorResponse
	if errors.As(err, &errorResponse) {
		return Declined, &DeclinedError{Messages: gatewayMessages(errorResponse)}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable, fmt.Errorf("error connecting to PayPal: [%w]", err)
	}

	return Error, fmt.Errorf("error calling PayPal: [%w]", err)
}

func gatewayMessages(errorResponse *paypal.ErrorResponse) []string {
	var messages []string
	for _, detail := range errorResponse.Details {
		switch {
		case detail.Description != "":
			messages = append(messages, detail.Description)
		case detail.Issue != "":
			messages = append(messages, detail.Issue)
		}
	}
	if len(messages) == 0 && errorResponse.Message != "" {
		messages = append(messages, errorResponse.Message)
	}
	return messages
}

// commitURL asks PayPal to show "Pay Now" rather than "Continue" on the approval page
func commitURL(href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	query := u.Query()
	query.Set("useraction", "commit")
	u.RawQuery = query.Encode()
	return u.String(), nil
}
