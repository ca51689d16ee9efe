package dao

import (
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/models"
)

// DAO is an interface for accessing orders, payments and payment methods from a backend store
type DAO interface {
	GetOrder(id string) (*models.OrderDB, error)
	PatchOrder(id string, orderUpdate *models.OrderDB) error
	GetPaymentMethod(id string) (*models.PaymentMethodDB, error)
	CreatePayment(payment *models.PaymentDB) error
	GetPaymentByToken(token string) (*models.PaymentDB, error)
	GetPaymentsByOrder(orderID string) ([]models.PaymentDB, error)
	PatchPayment(id string, paymentUpdate *models.PaymentDB) error
}

// NewDAO will create a new instance of the DAO interface.
func NewDAO(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                       database,
		OrdersCollection:         cfg.OrdersCollection,
		PaymentsCollection:       cfg.PaymentsCollection,
		PaymentMethodsCollection: cfg.PaymentMethodsCollection,
	}
}
