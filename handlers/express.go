package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/service"
)

// HandleExpress starts a PayPal Express Checkout session for the shopper's order and sends the
// shopper to PayPal
func HandleExpress(w http.ResponseWriter, req *http.Request) {
	order, ok := orderFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid order in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	paymentMethodID := req.FormValue("payment_method_id")
	if paymentMethodID == "" {
		log.ErrorR(req, fmt.Errorf("payment method id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	method, responseType, err := checkoutService.GetPaymentMethod(paymentMethodID)
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

	client, responseType, err := providerService.ClientFor(req.Context(), method)
	if err != nil {
		redirectGatewayFailure(w, req, responseType, err)
		return
	}

	request := requestBuilder.Build(order, method, callbackURLs(req, method.ID))

	paypalService := &service.PayPalService{Client: client}
	start, responseType, err := paypalService.SetExpressCheckout(req.Context(), request)
	if err != nil {
		redirectGatewayFailure(w, req, responseType, err)
		return
	}

	responseType, err = checkoutService.RecordExpressToken(order, start.Token)
	if err != nil {
		log.ErrorR(req, err, log.Data{"service_response_type": responseType.String()})
		redirectToPayment(w, req, flashOrderNotSaved)
		return
	}

	log.InfoR(req, "paypal express checkout started", log.Data{"order_number": order.Number, "payment_method_id": method.ID})
	redirect(w, req, start.RedirectURL)
}
