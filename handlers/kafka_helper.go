package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
)

// ProducerTopic is the topic to which the payment processed kafka message is sent
const ProducerTopic = "payment-processed"

// ProducerSchemaName is the schema which will be used to send the payment processed kafka message with
const ProducerSchemaName = "payment-processed"

// paymentProcessed represents the avro schema of the payment processed message
type paymentProcessed struct {
	PaymentID string `avro:"payment_resource_id"`
}

// producePaymentMessage handles creating a producer, marshalling the payment id into the correct avro schema and
// sending the message to the topic defined in ProducerTopic
func producePaymentMessage(paymentID string) error {
	if len(serviceConfig.BrokerAddr) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: serviceConfig.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}
	paymentProcessedSchema, err := schema.Get(serviceConfig.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: paymentProcessedSchema,
	}

	message, err := prepareKafkaMessage(paymentID, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// prepareKafkaMessage is pulled out of producePaymentMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(paymentID string, paymentProcessedSchema avro.Schema) (*producer.Message, error) {
	messageBytes, err := paymentProcessedSchema.Marshal(paymentProcessed{PaymentID: paymentID})
	if err != nil {
		return nil, fmt.Errorf("error marshalling payment processed message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
