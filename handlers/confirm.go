package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/models"
	"github.com/shopfront/paypal.express.api/service"
)

// HandleConfirm handles the shopper returning from PayPal after approving the payment
func HandleConfirm(w http.ResponseWriter, req *http.Request) {
	order, ok := orderFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid order in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	query := req.URL.Query()

	method, responseType, err := checkoutService.GetPaymentMethod(query.Get("payment_method_id"))
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting payment method: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		default:
			redirectToPayment(w, req, flashPayPalFailed)
		}
		return
	}

	source := models.ExpressCheckoutSession{
		Token:   query.Get("token"),
		PayerID: query.Get("PayerID"),
	}

	payment, responseType, err := checkoutService.ConfirmPayment(order, method, source)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error confirming paypal payment: [%v]", err), log.Data{"service_response_type": responseType.String(), "order_number": order.Number})
		switch responseType {
		case service.Error:
			redirectToPayment(w, req, flashOrderNotSaved)
		default:
			redirectToPayment(w, req, flashPayPalFailed)
		}
		return
	}

	if payment != nil {
		log.InfoR(req, "paypal payment confirmed", log.Data{"order_number": order.Number, "payment_id": payment.ID})
	}

	if order.IsComplete() {
		redirectCompletedOrder(w, req, order)
		return
	}

	redirect(w, req, checkoutPath(order.State))
}
