package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopfront/paypal.express.api/helpers"
	"github.com/shopfront/paypal.express.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

const confirmPath = "/paypal/confirm?token=EC-123&PayerID=PAYER1&payment_method_id=pm1&utm_nooverride=1"

func TestUnitHandleConfirm(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Unknown payment method", t, func() {
		mockDAO, _ := setUpHandlers(mockCtrl)
		mockDAO.EXPECT().GetPaymentMethod("pm1").Return(nil, nil)

		w := httptest.NewRecorder()
		HandleConfirm(w, withOrder(httptest.NewRequest("GET", confirmPath, nil), testOrder()))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Valid confirmation creates one payment and moves to confirm", t, func() {
		mockDAO, _ := setUpHandlers(mockCtrl)
		mockDAO.EXPECT().GetPaymentMethod("pm1").Return(activeMethod(), nil)
		mockDAO.EXPECT().GetPaymentByToken("EC-123").Return(nil, nil)

		var created []*models.PaymentDB
		mockDAO.EXPECT().CreatePayment(gomock.Any()).DoAndReturn(func(payment *models.PaymentDB) error {
			created = append(created, payment)
			return nil
		})

		var saved *models.OrderDB
		mockDAO.EXPECT().PatchOrder("order1", gomock.Any()).DoAndReturn(func(id string, update *models.OrderDB) error {
			saved = update
			return nil
		})

		w := httptest.NewRecorder()
		HandleConfirm(w, withOrder(httptest.NewRequest("GET", confirmPath, nil), testOrder()))

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldEqual, "/checkout/confirm")
		So(created, ShouldHaveLength, 1)
		So(created[0].Amount, ShouldEqual, "26.00")
		So(created[0].PaymentMethodID, ShouldEqual, "pm1")
		So(created[0].Source, ShouldResemble, models.ExpressCheckoutSession{Token: "EC-123", PayerID: "PAYER1"})
		So(saved.State, ShouldEqual, "confirm")
		So(saved.BillAddress.Address1, ShouldEqual, "1 High Street")
	})

	Convey("Missing payer id", t, func() {
		mockDAO, _ := setUpHandlers(mockCtrl)
		mockDAO.EXPECT().GetPaymentMethod("pm1").Return(activeMethod(), nil)
		mockDAO.EXPECT().CreatePayment(gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		HandleConfirm(w, withOrder(httptest.NewRequest("GET", "/paypal/confirm?token=EC-123&payment_method_id=pm1", nil), testOrder()))

		So(w.Header().Get("Location"), ShouldEqual, "/checkout/payment")
		So(flashes(w, helpers.FlashError), ShouldResemble, []string{"PayPal failed."})
	})

	Convey("Token from another session", t, func() {
		mockDAO, _ := setUpHandlers(mockCtrl)
		mockDAO.EXPECT().GetPaymentMethod("pm1").Return(activeMethod(), nil)
		mockDAO.EXPECT().CreatePayment(gomock.Any()).Times(0)

		order := testOrder()
		order.PayPalToken = "EC-999"
		w := httptest.NewRecorder()
		HandleConfirm(w, withOrder(httptest.NewRequest("GET", confirmPath, nil), order))

		So(w.Header().Get("Location"), ShouldEqual, "/checkout/payment")
		So(flashes(w, helpers.FlashError), ShouldResemble, []string{"PayPal failed."})
	})

	Convey("Order could not be saved", t, func() {
		mockDAO, _ := setUpHandlers(mockCtrl)
		mockDAO.EXPECT().GetPaymentMethod("pm1").Return(activeMethod(), nil)
		mockDAO.EXPECT().GetPaymentByToken("EC-123").Return(nil, nil)
		mockDAO.EXPECT().CreatePayment(gomock.Any()).Return(nil)
		mockDAO.EXPECT().PatchOrder("order1", gomock.Any()).Return(errors.New("error"))

		w := httptest.NewRecorder()
		HandleConfirm(w, withOrder(httptest.NewRequest("GET", confirmPath, nil), testOrder()))

		So(w.Header().Get("Location"), ShouldEqual, "/checkout/payment")
		So(flashes(w, helpers.FlashError), ShouldResemble, []string{"Your order could not be saved. Please try again."})
	})

	Convey("Completed order goes to the order page", t, func() {
		mockDAO, _ := setUpHandlers(mockCtrl)
		mockDAO.EXPECT().GetPaymentMethod("pm1").Return(activeMethod(), nil)

		order := testOrder()
		order.State = models.StateComplete

		setSession := httptest.NewRecorder()
		_ = sessionStore.SetOrderID(setSession, httptest.NewRequest("GET", "/", nil), "order1")
		req := httptest.NewRequest("GET", confirmPath, nil)
		for _, cookie := range setSession.Result().Cookies() {
			req.AddCookie(cookie)
		}

		w := httptest.NewRecorder()
		HandleConfirm(w, withOrder(req, order))

		So(w.Header().Get("Location"), ShouldEqual, "/orders/R123")
		So(flashes(w, helpers.FlashNotice), ShouldResemble, []string{"Your order has been processed successfully"})
		So(flashes(w, helpers.FlashOrderCompleted), ShouldResemble, []string{"true"})
		So(sessionOrderID(w), ShouldEqual, "")
	})
}
