package mercadopago

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
)

func Test_CreatePayment_Pix(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v1/payments", r.URL.Path)
		req.Equal("Bearer TEST-TOKEN", r.Header.Get("Authorization"))
		req.NotEmpty(r.Header.Get("X-Idempotency-Key"))

		body := PaymentCreateReq{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("pix", body.PaymentMethodId)
		req.Equal(180.0, body.TransactionAmount)

		w.Write([]byte(`{
			"id": 123456,
			"status": "pending",
			"status_detail": "pending_waiting_transfer",
			"point_of_interaction": {
				"transaction_data": {
					"qr_code": "00020126pixcode",
					"ticket_url": "https://mp.example/ticket/123456"
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		AccessToken: "TEST-TOKEN",
		Timeout:     10 * time.Second,
		Api:         srv.URL,
	})

	resp, err := c.CreatePayment(bCtx.Background(), PaymentCreateReq{
		TransactionAmount: 180.0,
		PaymentMethodId:   PaymentMethodPix,
		Payer:             Payer{Email: "buyer@example.com"},
	})
	req.NoError(err)
	req.Equal(int64(123456), resp.Id)
	req.Equal("pending", resp.Status)
	req.Equal("00020126pixcode", resp.PointOfInteraction.TransactionData.QrCode)
	req.Equal("https://mp.example/ticket/123456", resp.PointOfInteraction.TransactionData.TicketUrl)
}

func Test_CreatePayment_Card(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := PaymentCreateReq{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("card_token", body.Token)
		req.Equal(1, body.Installments)
		w.Write([]byte(`{"id": 99, "status": "approved", "status_detail": "accredited"}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		AccessToken: "TEST-TOKEN",
		Timeout:     10 * time.Second,
		Api:         srv.URL,
	})

	resp, err := c.CreatePayment(bCtx.Background(), PaymentCreateReq{
		TransactionAmount: 225.0,
		PaymentMethodId:   "master",
		Token:             "card_token",
		Installments:      1,
		Payer:             Payer{Email: "buyer@example.com"},
	})
	req.NoError(err)
	req.Equal("approved", resp.Status)
	req.Equal("accredited", resp.StatusDetail)
}

func Test_CreatePayment_ApiError(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "invalid access token", "error": "bad_request"}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		AccessToken: "TEST-TOKEN",
		Timeout:     10 * time.Second,
		Api:         srv.URL,
	})

	_, err := c.CreatePayment(bCtx.Background(), PaymentCreateReq{
		TransactionAmount: 1,
		PaymentMethodId:   PaymentMethodPix,
		Payer:             Payer{Email: "buyer@example.com"},
	})
	req.ErrorIs(err, ErrPaymentCreate)
	req.Contains(err.Error(), "invalid access token")
}
