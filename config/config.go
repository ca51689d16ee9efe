// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                 string   `env:"BIND_ADDR"                          flag:"bind-addr"                          flagDesc:"Bind address"`
	MongoDBURL               string   `env:"MONGODB_URL"                        flag:"mongodb-url"                        flagDesc:"MongoDB server URL"`
	Database                 string   `env:"MONGODB_DATABASE"                   flag:"mongodb-database"                   flagDesc:"MongoDB database for data"`
	OrdersCollection         string   `env:"MONGODB_ORDERS_COLLECTION"          flag:"mongodb-orders-collection"          flagDesc:"MongoDB collection for orders"`
	PaymentsCollection       string   `env:"MONGODB_PAYMENTS_COLLECTION"        flag:"mongodb-payments-collection"        flagDesc:"MongoDB collection for payments"`
	PaymentMethodsCollection string   `env:"MONGODB_PAYMENT_METHODS_COLLECTION" flag:"mongodb-payment-methods-collection" flagDesc:"MongoDB collection for payment methods"`
	PaypalEnv                string   `env:"PAYPAL_ENV"                         flag:"paypal-env"                         flagDesc:"PayPal environment, live or test"`
	PaypalClientID           string   `env:"PAYPAL_CLIENT_ID"                   flag:"paypal-client-id"                   flagDesc:"Default PayPal REST client id"`
	PaypalSecret             string   `env:"PAYPAL_SECRET"                      flag:"paypal-secret"                      flagDesc:"Default PayPal REST secret"`
	PaypalNVPURL             string   `env:"PAYPAL_NVP_URL"                     flag:"paypal-nvp-url"                     flagDesc:"PayPal classic NVP endpoint"`
	PaypalCaptureAPI         string   `env:"PAYPAL_CAPTURE_API"                 flag:"paypal-capture-api"                 flagDesc:"API used to process confirmed payments, rest or nvp"`
	PPVersion                string   `env:"PP_VERSION"                         flag:"pp-version"                         flagDesc:"PayPal NVP API version"`
	PPUser                   string   `env:"PP_USER"                            flag:"pp-user"                            flagDesc:"PayPal NVP API username"`
	PPPassword               string   `env:"PP_PWD"                             flag:"pp-pwd"                             flagDesc:"PayPal NVP API password"`
	PPSignature              string   `env:"PP_SIGNATURE"                       flag:"pp-signature"                       flagDesc:"PayPal NVP API signature"`
	SessionName              string   `env:"SESSION_NAME"                       flag:"session-name"                       flagDesc:"Name of the storefront session cookie"`
	SessionSecret            string   `env:"SESSION_SECRET"                     flag:"session-secret"                     flagDesc:"Key used to authenticate the storefront session cookie"`
	FreeShippingPromotionID  string   `env:"FREE_SHIPPING_PROMOTION_ID"         flag:"free-shipping-promotion-id"         flagDesc:"Promotion whose eligible adjustment discounts the shipping total sent to PayPal"`
	FreeShippingDiscount     string   `env:"FREE_SHIPPING_DISCOUNT"             flag:"free-shipping-discount"             flagDesc:"Flat amount taken off the shipping total when the free shipping promotion applies"`
	ShippingMethodName       string   `env:"SHIPPING_METHOD_NAME"               flag:"shipping-method-name"               flagDesc:"Shipping method name sent to PayPal"`
	ExpressRateLimit         int      `env:"EXPRESS_RATE_LIMIT"                 flag:"express-rate-limit"                 flagDesc:"Express checkout requests allowed per shopper per minute"`
	ExpressRateBurst         int      `env:"EXPRESS_RATE_BURST"                 flag:"express-rate-burst"                 flagDesc:"Express checkout request burst per shopper"`
	TrustedProxies           []string `env:"TRUSTED_PROXIES"                    flag:"trusted-proxies"                    flagDesc:"Proxy addresses whose X-Forwarded-For header is trusted"`
	BrokerAddr               []string `env:"KAFKA_BROKER_ADDR"                  flag:"broker-addr"                        flagDesc:"Kafka broker address"`
	SchemaRegistryURL        string   `env:"SCHEMA_REGISTRY_URL"                flag:"schema-registry-url"                flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                 "storefront",
		OrdersCollection:         "orders",
		PaymentsCollection:       "payments",
		PaymentMethodsCollection: "payment_methods",
		PaypalEnv:                "test",
		PaypalNVPURL:             "https://api-3t.paypal.com/nvp",
		PaypalCaptureAPI:         "rest",
		SessionName:              "storefront_session",
		FreeShippingPromotionID:  "5",
		FreeShippingDiscount:     "4.95",
		ShippingMethodName:       "Standard Shipping",
		ExpressRateLimit:         10,
		ExpressRateBurst:         5,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
