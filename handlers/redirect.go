package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/helpers"
	"github.com/shopfront/paypal.express.api/models"
	"github.com/shopfront/paypal.express.api/service"
)

// Messages shown to the shopper
const (
	flashPayPalFailed      = "PayPal failed."
	flashCouldNotConnect   = "Could not connect to PayPal."
	flashOrderNotSaved     = "Your order could not be saved. Please try again."
	flashOrderProcessed    = "Your order has been processed successfully"
	flashPayPalCancelled   = "Don't want to use PayPal? No problems."
	flashOrderCompletedSet = "true"
)

func orderFromContext(req *http.Request) (*models.Order, bool) {
	order, ok := req.Context().Value(helpers.ContextKeyOrder).(*models.Order)
	return order, ok && order != nil
}

func checkoutPath(state models.CheckoutState) string {
	return "/checkout/" + string(state)
}

func orderPath(order *models.Order) string {
	return "/orders/" + order.Number
}

// redirect writes any pending session changes before sending the shopper on
func redirect(w http.ResponseWriter, req *http.Request, location string) {
	if err := sessionStore.Save(w, req); err != nil {
		log.ErrorR(req, fmt.Errorf("error saving session: [%v]", err))
	}

	log.InfoR(req, "Redirecting to:", log.Data{"location": location})
	http.Redirect(w, req, location, http.StatusSeeOther)
}

func addFlash(req *http.Request, kind, message string) {
	if err := sessionStore.AddFlash(req, kind, message); err != nil {
		log.ErrorR(req, fmt.Errorf("error adding flash: [%v]", err))
	}
}

// redirectToPayment sends the shopper back to the payment step with an error
func redirectToPayment(w http.ResponseWriter, req *http.Request, message string) {
	addFlash(req, helpers.FlashError, message)
	redirect(w, req, checkoutPath(models.StatePayment))
}

// redirectGatewayFailure explains a failed PayPal call to the shopper
func redirectGatewayFailure(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	log.ErrorR(req, err, log.Data{"service_response_type": responseType.String()})

	switch responseType {
	case service.Declined:
		message := flashPayPalFailed
		var declined *service.DeclinedError
		if errors.As(err, &declined) && declined.Reasons() != "" {
			message = flashPayPalFailed + " " + declined.Reasons()
		}
		redirectToPayment(w, req, message)
	case service.Unavailable:
		redirectToPayment(w, req, flashCouldNotConnect)
	default:
		redirectToPayment(w, req, flashPayPalFailed)
	}
}

// redirectCompletedOrder shows the finished order and forgets it in the session
func redirectCompletedOrder(w http.ResponseWriter, req *http.Request, order *models.Order) {
	addFlash(req, helpers.FlashNotice, flashOrderProcessed)
	addFlash(req, helpers.FlashOrderCompleted, flashOrderCompletedSet)
	if err := sessionStore.ClearOrder(req); err != nil {
		log.ErrorR(req, fmt.Errorf("error clearing order from session: [%v]", err))
	}
	redirect(w, req, orderPath(order))
}

// callbackURLs are the return and cancel URLs PayPal sends the shopper back to
func callbackURLs(req *http.Request, paymentMethodID string) service.CallbackURLs {
	base := requestScheme(req) + "://" + req.Host

	query := url.Values{}
	query.Set("payment_method_id", paymentMethodID)
	query.Set("utm_nooverride", "1")

	return service.CallbackURLs{
		Return: base + "/paypal/confirm?" + query.Encode(),
		Cancel: base + "/paypal/cancel",
	}
}

func requestScheme(req *http.Request) string {
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		return strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	if req.TLS != nil {
		return "https"
	}
	return "http"
}
