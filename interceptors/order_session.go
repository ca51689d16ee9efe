package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/helpers"
	"github.com/shopfront/paypal.express.api/service"
	"github.com/shopfront/paypal.express.api/utils"
)

// OrderSessionInterceptor contains the services used to load the shopper's order
type OrderSessionInterceptor struct {
	Service  *service.CheckoutService
	Sessions *helpers.SessionStore
}

// OrderSessionIntercept loads the order held in the shopper's session into the request context
func (interceptor OrderSessionInterceptor) OrderSessionIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := interceptor.Sessions.OrderID(r)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("OrderSessionInterceptor error: [%v]", err))
			utils.WriteMessage(w, r, http.StatusNotFound, "no order in session")
			return
		}
		if id == "" {
			log.InfoR(r, "OrderSessionInterceptor: no order in session")
			utils.WriteMessage(w, r, http.StatusNotFound, "no order in session")
			return
		}

		order, responseType, err := interceptor.Service.GetOrder(id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("OrderSessionInterceptor error when retrieving order: [%v]", err), log.Data{"service_response_type": responseType.String()})
			switch responseType {
			case service.NotFound:
				utils.WriteMessage(w, r, http.StatusNotFound, "order not found")
			default:
				utils.WriteMessage(w, r, http.StatusInternalServerError, "error retrieving order")
			}
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyOrder, order)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
