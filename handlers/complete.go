package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// handlePaymentMessage allows us to mock the call to producePaymentMessage for unit tests
var handlePaymentMessage = producePaymentMessage

// HandleComplete processes the confirmed PayPal payments of the shopper's order and completes it
func HandleComplete(w http.ResponseWriter, req *http.Request) {
	order, ok := orderFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid order in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payments, responseType, err := checkoutService.CompleteOrder(req.Context(), order, paymentProcessor)
	if err != nil {
		redirectGatewayFailure(w, req, responseType, err)
		return
	}

	for _, payment := range payments {
		if err = handlePaymentMessage(payment.ID); err != nil {
			log.ErrorR(req, fmt.Errorf("error producing payment processed message: [%v]", err), log.Data{"payment_id": payment.ID})
		}
	}

	log.InfoR(req, "order completed with paypal", log.Data{"order_number": order.Number, "payments": len(payments)})
	redirectCompletedOrder(w, req, order)
}
