package handlers

import (
	"testing"

	"github.com/companieshouse/chs.go/avro"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitPrepareKafkaMessage(t *testing.T) {
	Convey("Successful message preparation", t, func() {
		schema := `{
			"type": "record",
			"name": "payment_processed",
			"namespace": "payments",
			"fields": [
			{
				"name": "payment_resource_id",
				"type": "string"
			}
			]
		}`
		producerSchema := &avro.Schema{
			Definition: schema,
		}

		message, err := prepareKafkaMessage("pay1", *producerSchema)
		So(err, ShouldBeNil)
		So(message.Topic, ShouldEqual, ProducerTopic)

		unmarshalled := paymentProcessed{}
		So(producerSchema.Unmarshal(message.Value, &unmarshalled), ShouldBeNil)
		So(unmarshalled.PaymentID, ShouldEqual, "pay1")
	})

	Convey("Schema with the wrong type", t, func() {
		schema := `{
			"type": "record",
			"name": "payment_processed",
			"namespace": "payments",
			"fields": [
			{
				"name": "payment_resource_id",
				"type": "int"
			}
			]
		}`
		producerSchema := &avro.Schema{
			Definition: schema,
		}

		_, err := prepareKafkaMessage("pay1", *producerSchema)
		So(err, ShouldNotBeNil)
	})

	Convey("No brokers configured", t, func() {
		serviceConfig.BrokerAddr = nil
		So(producePaymentMessage("pay1"), ShouldNotBeNil)
	})
}
