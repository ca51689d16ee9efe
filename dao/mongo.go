package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no database connection so the prog must
	// crash here as the service cannot continue.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure here should result in a crash.
	if pingErr := mongoClient.Ping(ctx, nil); pingErr != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(pingErr)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db                       MongoDatabaseInterface
	OrdersCollection         string
	PaymentsCollection       string
	PaymentMethodsCollection string
}

// GetOrder gets an order from the DB
// If the order is not found in the DB, return nil
func (m *MongoService) GetOrder(id string) (*models.OrderDB, error) {
	var order models.OrderDB

	collection := m.db.Collection(m.OrdersCollection)
	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("no order found for id", log.Data{"order_id": id})
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

// PatchOrder patches the checkout fields of an order in the DB
func (m *MongoService) PatchOrder(id string, orderUpdate *models.OrderDB) error {
	patchUpdate := make(bson.M)

	// Patch only these fields
	if orderUpdate.State != "" {
		patchUpdate["state"] = orderUpdate.State
	}
	if orderUpdate.BillAddress != nil {
		patchUpdate["bill_address"] = orderUpdate.BillAddress
	}
	if orderUpdate.PayPalToken != "" {
		patchUpdate["paypal_token"] = orderUpdate.PayPalToken
	}
	if !orderUpdate.CompletedAt.IsZero() {
		patchUpdate["completed_at"] = orderUpdate.CompletedAt
	}

	if len(patchUpdate) == 0 {
		return nil
	}

	collection := m.db.Collection(m.OrdersCollection)
	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": patchUpdate})
	if err != nil {
		return fmt.Errorf("error updating order [%s]: [%w]", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no order found with id [%s]", id)
	}

	return nil
}

// GetPaymentMethod gets a payment method from the DB
// If the payment method is not found in the DB, return nil
func (m *MongoService) GetPaymentMethod(id string) (*models.PaymentMethodDB, error) {
	var paymentMethod models.PaymentMethodDB

	collection := m.db.Collection(m.PaymentMethodsCollection)
	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&paymentMethod)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &paymentMethod, nil
}

// CreatePayment writes a new payment to the DB
func (m *MongoService) CreatePayment(payment *models.PaymentDB) error {
	collection := m.db.Collection(m.PaymentsCollection)
	_, err := collection.InsertOne(context.Background(), payment)

	return err
}

// GetPaymentByToken gets the payment created for a PayPal token
// If no payment has been created for the token, return nil
func (m *MongoService) GetPaymentByToken(token string) (*models.PaymentDB, error) {
	var payment models.PaymentDB

	collection := m.db.Collection(m.PaymentsCollection)
	err := collection.FindOne(context.Background(), bson.M{"source.token": token}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

// GetPaymentsByOrder gets all payments taken against an order
func (m *MongoService) GetPaymentsByOrder(orderID string) ([]models.PaymentDB, error) {
	collection := m.db.Collection(m.PaymentsCollection)

	cursor, err := collection.Find(context.Background(), bson.M{"order_id": orderID})
	if err != nil {
		return nil, fmt.Errorf("error finding payments for order [%s]: [%w]", orderID, err)
	}

	var payments []models.PaymentDB
	if err = cursor.All(context.Background(), &payments); err != nil {
		return nil, fmt.Errorf("error decoding payments for order [%s]: [%w]", orderID, err)
	}

	return payments, nil
}

// PatchPayment patches the processing fields of a payment in the DB
func (m *MongoService) PatchPayment(id string, paymentUpdate *models.PaymentDB) error {
	patchUpdate := make(bson.M)

	if paymentUpdate.State != "" {
		patchUpdate["state"] = paymentUpdate.State
	}
	if paymentUpdate.TransactionID != "" {
		patchUpdate["transaction_id"] = paymentUpdate.TransactionID
	}

	if len(patchUpdate) == 0 {
		return nil
	}

	collection := m.db.Collection(m.PaymentsCollection)
	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": patchUpdate})
	if err != nil {
		return fmt.Errorf("error updating payment [%s]: [%w]", id, err)
	}

	return nil
}
