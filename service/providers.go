package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/models"
	"golang.org/x/sync/singleflight"
)

var _ PayPalSDK = (*paypal.Client)(nil)

// ClientFactory creates an authenticated PayPal client
type ClientFactory func(ctx context.Context, clientID, secret, apiBase string) (PayPalSDK, error)

// ProviderService hands out one PayPal client per payment method. Credentials missing from the
// payment method are taken from the service config.
type ProviderService struct {
	Config    config.Config
	NewClient ClientFactory

	mtx     sync.Mutex
	clients map[string]PayPalSDK
	group   singleflight.Group
}

// NewProviderService creates a ProviderService backed by the PayPal REST client
func NewProviderService(cfg config.Config) *ProviderService {
	return &ProviderService{
		Config:    cfg,
		NewClient: newPayPalClient,
	}
}

// ClientFor returns the PayPal client for the payment method, creating it on first use
func (ps *ProviderService) ClientFor(ctx context.Context, method *models.PaymentMethodDB) (PayPalSDK, ResponseType, error) {
	if c := ps.cached(method.ID); c != nil {
		return c, Success, nil
	}

	v, err, _ := ps.group.Do(method.ID, func() (interface{}, error) {
		if c := ps.cached(method.ID); c != nil {
			return c, nil
		}

		env := valueOrDefault(method.Environment, ps.Config.PaypalEnv)
		apiBase := getPayPalAPIBase(env)
		if apiBase == "" {
			return nil, errInvalidEnv{methodID: method.ID, env: env}
		}

		c, err := ps.NewClient(ctx,
			valueOrDefault(method.ClientID, ps.Config.PaypalClientID),
			valueOrDefault(method.Secret, ps.Config.PaypalSecret),
			apiBase)
		if err != nil {
			return nil, err
		}

		ps.mtx.Lock()
		if ps.clients == nil {
			ps.clients = make(map[string]PayPalSDK)
		}
		ps.clients[method.ID] = c
		ps.mtx.Unlock()

		log.Info("created paypal client", log.Data{"payment_method_id": method.ID, "env": env})
		return c, nil
	})
	if err != nil {
		var invalidEnv errInvalidEnv
		if errors.As(err, &invalidEnv) {
			return nil, InvalidData, err
		}
		responseType, err := classifyGatewayError(err)
		return nil, responseType, err
	}

	return v.(PayPalSDK), Success, nil
}

type errInvalidEnv struct {
	methodID, env string
}

func (e errInvalidEnv) Error() string {
	return fmt.Sprintf("invalid paypal env for payment method [%s]: %s", e.methodID, e.env)
}

func (ps *ProviderService) cached(id string) PayPalSDK {
	ps.mtx.Lock()
	defer ps.mtx.Unlock()
	return ps.clients[id]
}

func newPayPalClient(ctx context.Context, clientID, secret, apiBase string) (PayPalSDK, error) {
	c, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%w]", err)
	}
	_, err = c.GetAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%w]", err)
	}
	return c, nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}

// RESTProcessor captures payments with the PayPal client of each payment's own payment method
type RESTProcessor struct {
	Checkout  *CheckoutService
	Providers *ProviderService
}

// ProcessPayment captures the PayPal order behind the payment
func (p *RESTProcessor) ProcessPayment(ctx context.Context, payment *models.Payment) (string, error) {
	method, _, err := p.Checkout.GetPaymentMethod(payment.PaymentMethodID)
	if err != nil {
		return "", err
	}

	client, _, err := p.Providers.ClientFor(ctx, method)
	if err != nil {
		return "", err
	}

	pp := PayPalService{Client: client}
	return pp.ProcessPayment(ctx, payment)
}
