package service

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/plutov/paypal/v4"
	"github.com/shopfront/paypal.express.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func expressRequest() models.ExpressCheckoutRequest {
	order := testOrder()
	return createBuilder().Build(order, &models.PaymentMethodDB{ID: "pm1"}, CallbackURLs{
		Return: "https://shop.example.com/paypal/confirm?payment_method_id=pm1&utm_nooverride=1",
		Cancel: "https://shop.example.com/paypal/cancel",
	})
}

func TestUnitSetExpressCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Order created returns the token and commit redirect", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CreateOrder(gomock.Any(), paypal.OrderIntentCapture, gomock.Any(), gomock.Any(), gomock.Any()).Return(&paypal.Order{
			ID:     "EC-123",
			Status: paypal.OrderStatusCreated,
			Links: []paypal.Link{
				{Rel: "self", Href: "https://api.sandbox.paypal.com/v2/checkout/orders/EC-123"},
				{Rel: "approve", Href: "https://www.sandbox.paypal.com/checkoutnow?token=EC-123"},
			},
		}, nil)

		start, responseType, err := service.SetExpressCheckout(context.Background(), expressRequest())
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(start.Token, ShouldEqual, "EC-123")
		So(start.RedirectURL, ShouldEqual, "https://www.sandbox.paypal.com/checkoutnow?token=EC-123&useraction=commit")
	})

	Convey("Decline with two messages keeps both", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &paypal.ErrorResponse{
			Name:    "UNPROCESSABLE_ENTITY",
			Message: "The requested action could not be performed.",
			Details: []paypal.ErrorResponseDetail{
				{Issue: "ITEM_TOTAL_MISMATCH", Description: "Should equal sum of items."},
				{Issue: "AMOUNT_MISMATCH", Description: "Should equal item total plus shipping."},
			},
		})

		start, responseType, err := service.SetExpressCheckout(context.Background(), expressRequest())
		So(start, ShouldBeNil)
		So(responseType, ShouldEqual, Declined)

		var declined *DeclinedError
		So(errors.As(err, &declined), ShouldBeTrue)
		So(declined.Reasons(), ShouldEqual, "Should equal sum of items. Should equal item total plus shipping.")
	})

	Convey("Decline without details uses the top level message", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &paypal.ErrorResponse{
			Message: "Authentication failed.",
		})

		_, responseType, err := service.SetExpressCheckout(context.Background(), expressRequest())
		So(responseType, ShouldEqual, Declined)
		var declined *DeclinedError
		So(errors.As(err, &declined), ShouldBeTrue)
		So(declined.Messages, ShouldResemble, []string{"Authentication failed."})
	})

	Convey("Network failure is unavailable", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

		start, responseType, err := service.SetExpressCheckout(context.Background(), expressRequest())
		So(start, ShouldBeNil)
		So(responseType, ShouldEqual, Unavailable)
		So(err, ShouldNotBeNil)
	})

	Convey("Other failures are errors", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

		_, responseType, err := service.SetExpressCheckout(context.Background(), expressRequest())
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error calling PayPal: [error]")
	})

	Convey("Status not CREATED", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&paypal.Order{ID: "EC-123", Status: paypal.OrderStatusVoided}, nil)

		_, responseType, err := service.SetExpressCheckout(context.Background(), expressRequest())
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "failed to correctly create paypal order - status is not CREATED")
	})

	Convey("No approve link", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&paypal.Order{ID: "EC-123", Status: paypal.OrderStatusCreated}, nil)

		_, responseType, err := service.SetExpressCheckout(context.Background(), expressRequest())
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "paypal order [EC-123] has no approve link")
	})
}

func TestUnitPayPalProcessPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	payment := &models.Payment{ID: "pay1", Source: models.ExpressCheckoutSession{Token: "EC-123", PayerID: "PAYER1"}}

	Convey("Completed capture returns the capture transaction id", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "EC-123", gomock.Any()).Return(&paypal.CaptureOrderResponse{
			ID:     "EC-123",
			Status: paypal.OrderStatusCompleted,
			PurchaseUnits: []paypal.CapturedPurchaseUnit{{
				ReferenceID: "R123",
				Payments:    &paypal.CapturedPayments{Captures: []paypal.CaptureAmount{{ID: "3C679366HH908993F", Status: "COMPLETED"}}},
			}},
		}, nil)

		id, err := service.ProcessPayment(context.Background(), payment)
		So(err, ShouldBeNil)
		So(id, ShouldEqual, "3C679366HH908993F")
	})

	Convey("Completed capture without capture details falls back to the order id", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "EC-123", gomock.Any()).Return(&paypal.CaptureOrderResponse{ID: "EC-123", Status: paypal.OrderStatusCompleted}, nil)

		id, err := service.ProcessPayment(context.Background(), payment)
		So(err, ShouldBeNil)
		So(id, ShouldEqual, "EC-123")
	})

	Convey("Incomplete capture is declined", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "EC-123", gomock.Any()).Return(&paypal.CaptureOrderResponse{ID: "EC-123", Status: "PENDING"}, nil)

		id, err := service.ProcessPayment(context.Background(), payment)
		So(id, ShouldEqual, "")
		var declined *DeclinedError
		So(errors.As(err, &declined), ShouldBeTrue)
		So(declined.Reasons(), ShouldEqual, "capture status is PENDING")
	})

	Convey("Capture refused by PayPal", t, func() {
		mockSDK := NewMockPayPalSDK(mockCtrl)
		service := PayPalService{Client: mockSDK}

		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "EC-123", gomock.Any()).Return(nil, &paypal.ErrorResponse{
			Details: []paypal.ErrorResponseDetail{{Issue: "INSTRUMENT_DECLINED"}},
		})

		_, err := service.ProcessPayment(context.Background(), payment)
		var declined *DeclinedError
		So(errors.As(err, &declined), ShouldBeTrue)
		So(declined.Reasons(), ShouldEqual, "INSTRUMENT_DECLINED")
	})
}
