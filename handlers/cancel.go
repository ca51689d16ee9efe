package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/helpers"
	"github.com/shopfront/paypal.express.api/models"
)

// HandleCancel sends the shopper back to the payment step after they backed out on PayPal
func HandleCancel(w http.ResponseWriter, req *http.Request) {
	order, ok := orderFromContext(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid order in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	location := checkoutPath(models.StatePayment)
	if token := req.URL.Query().Get("token"); token != "" {
		location += "?" + url.Values{"paypal_cancel_token": {token}}.Encode()
	}

	log.InfoR(req, "paypal checkout cancelled", log.Data{"order_number": order.Number})
	addFlash(req, helpers.FlashNotice, flashPayPalCancelled)
	redirect(w, req, location)
}
