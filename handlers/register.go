package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/dao"
	"github.com/shopfront/paypal.express.api/helpers"
	"github.com/shopfront/paypal.express.api/interceptors"
	"github.com/shopfront/paypal.express.api/service"
)

const captureAPINVP = "nvp"

var checkoutService *service.CheckoutService
var providerService *service.ProviderService
var requestBuilder *service.ExpressRequestBuilder
var paymentProcessor service.PaymentProcessor
var sessionStore *helpers.SessionStore
var serviceConfig config.Config

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	serviceConfig = cfg

	builder, err := service.NewExpressRequestBuilder(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	requestBuilder = builder

	checkoutService = &service.CheckoutService{DAO: dao.NewDAO(&cfg)}
	providerService = service.NewProviderService(cfg)
	sessionStore, err = helpers.NewSessionStore(&cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	if cfg.PaypalCaptureAPI == captureAPINVP {
		paymentProcessor = &service.NVPService{Config: cfg}
	} else {
		paymentProcessor = &service.RESTProcessor{Checkout: checkoutService, Providers: providerService}
	}

	registerRoutes(mainRouter, cfg)
}

func registerRoutes(mainRouter *mux.Router, cfg config.Config) {
	orderInterceptor := &interceptors.OrderSessionInterceptor{
		Service:  checkoutService,
		Sessions: sessionStore,
	}
	rateLimiter := interceptors.NewRateLimitInterceptor(&cfg, sessionStore)

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// express needs its own subrouter so that only session initiation is rate limited
	expressRouter := mainRouter.PathPrefix("/paypal").Subrouter()
	expressRouter.HandleFunc("", HandleExpress).Methods("POST").Name("paypal-express")

	callbackRouter := mainRouter.PathPrefix("/paypal").Subrouter()
	callbackRouter.HandleFunc("/confirm", HandleConfirm).Methods("GET").Name("paypal-confirm")
	callbackRouter.HandleFunc("/cancel", HandleCancel).Methods("GET").Name("paypal-cancel")
	callbackRouter.HandleFunc("/complete", HandleComplete).Methods("POST").Name("paypal-complete")

	// Set middleware for subrouters
	expressRouter.Use(log.Handler, rateLimiter.RateLimitIntercept, orderInterceptor.OrderSessionIntercept)
	callbackRouter.Use(log.Handler, orderInterceptor.OrderSessionIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
