package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/golang/mock/gomock"
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/dao"
	"github.com/shopfront/paypal.express.api/helpers"
	"github.com/shopfront/paypal.express.api/models"
	"github.com/shopfront/paypal.express.api/service"
	"github.com/shopspring/decimal"
)

// setUpHandlers points the package services at mocks
func setUpHandlers(mockCtrl *gomock.Controller) (*dao.MockDAO, *service.MockPayPalSDK) {
	mockDAO := dao.NewMockDAO(mockCtrl)
	mockSDK := service.NewMockPayPalSDK(mockCtrl)

	cfg := config.DefaultConfig()
	cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
	serviceConfig = *cfg

	checkoutService = &service.CheckoutService{DAO: mockDAO}
	providerService = &service.ProviderService{
		Config: *cfg,
		NewClient: func(ctx context.Context, clientID, secret, apiBase string) (service.PayPalSDK, error) {
			return mockSDK, nil
		},
	}
	requestBuilder, _ = service.NewExpressRequestBuilder(*cfg)
	sessionStore, _ = helpers.NewSessionStore(cfg)
	paymentProcessor = &service.RESTProcessor{Checkout: checkoutService, Providers: providerService}

	return mockDAO, mockSDK
}

func testOrder() *models.Order {
	return &models.Order{
		ID:                 "order1",
		Number:             "R123",
		Email:              "shopper@example.com",
		Currency:           "GBP",
		State:              models.StatePayment,
		Total:              decimal.RequireFromString("26.00"),
		ShipTotal:          decimal.RequireFromString("4.95"),
		AdditionalTaxTotal: decimal.RequireFromString("1.05"),
		LineItems: []models.LineItem{
			{ProductName: "Mug", SKU: "MUG-1", Quantity: 2, Price: decimal.RequireFromString("10.00")},
		},
		ShipAddress: &models.Address{FirstName: "Ada", LastName: "Lovelace", Address1: "1 High Street", City: "Cardiff", Zipcode: "CF10 1AA", CountryISO: "GB"},
		PayPalToken: "EC-123",
	}
}

func activeMethod() *models.PaymentMethodDB {
	return &models.PaymentMethodDB{ID: "pm1", Name: "PayPal", Active: true}
}

func withOrder(req *http.Request, order *models.Order) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyOrder, order))
}

func formRequest(path, body string) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashes reads the queued messages of a kind from the session written by the response
func flashes(w *httptest.ResponseRecorder, kind string) []string {
	req := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range w.Result().Cookies() {
		req.AddCookie(cookie)
	}
	messages, _ := sessionStore.Flashes(httptest.NewRecorder(), req, kind)
	return messages
}

// sessionOrderID reads the session order written by the response
func sessionOrderID(w *httptest.ResponseRecorder) string {
	req := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range w.Result().Cookies() {
		req.AddCookie(cookie)
	}
	id, _ := sessionStore.OrderID(req)
	return id
}
