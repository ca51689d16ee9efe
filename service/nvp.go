package service

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal.express.api/config"
	"github.com/shopfront/paypal.express.api/models"
)

const doExpressCheckoutPayment = "DoExpressCheckoutPayment"

// NVPService processes confirmed payments through the PayPal classic NVP API
type NVPService struct {
	Config config.Config
}

// DoExpressCheckoutPayment takes the money for a payment the shopper approved on PayPal
func (n *NVPService) DoExpressCheckoutPayment(ctx context.Context, payment *models.Payment) (*models.NVPResponse, error) {
	form := url.Values{}
	form.Set("METHOD", doExpressCheckoutPayment)
	form.Set("TOKEN", payment.Source.Token)
	form.Set("PAYERID", payment.Source.PayerID)
	form.Set("PAYMENTACTION", paymentActionSale)
	form.Set("AMT", payment.Amount.StringFixed(2))
	form.Set("CURRENCYCODE", payment.Currency)
	form.Set("VERSION", n.Config.PPVersion)
	form.Set("USER", n.Config.PPUser)
	form.Set("PWD", n.Config.PPPassword)
	form.Set("SIGNATURE", n.Config.PPSignature)

	log.Trace("performing PayPal NVP request", log.Data{"method": doExpressCheckoutPayment, "payment_id": payment.ID, "amount": payment.Amount.StringFixed(2)})

	request, err := http.NewRequest("POST", n.Config.PaypalNVPURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
	}
	request = request.WithContext(ctx)
	request.Header.Add("content-type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error connecting to PayPal: [%w]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status [%v] back from PayPal", resp.StatusCode)
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("error parsing response from PayPal: [%s]", err)
	}

	transactionID := values.Get("PAYMENTINFO_0_TRANSACTIONID")
	if transactionID == "" {
		transactionID = values.Get("TRANSACTIONID")
	}

	return &models.NVPResponse{
		Ack:           values.Get("ACK"),
		ShortMessage:  values.Get("L_SHORTMESSAGE0"),
		LongMessage:   values.Get("L_LONGMESSAGE0"),
		TransactionID: transactionID,
	}, nil
}

// ProcessPayment completes the payment and returns the PayPal transaction id
func (n *NVPService) ProcessPayment(ctx context.Context, payment *models.Payment) (string, error) {
	res, err := n.DoExpressCheckoutPayment(ctx, payment)
	if err != nil {
		return "", err
	}

	if !res.IsSuccess() {
		message := res.LongMessage
		if message == "" {
			message = res.ShortMessage
		}
		return "", &DeclinedError{Messages: []string{message}}
	}

	return res.TransactionID, nil
}
