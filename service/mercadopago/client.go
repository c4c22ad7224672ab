package mercadopago

import (
	"errors"
	"time"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
)

var (
	ErrPaymentCreate = errors.New("payment create failed")
)

// PaymentMethodPix is the instant bank transfer rail
const PaymentMethodPix = "pix"

type Client interface {
	// CreatePayment posts a payment to the processor, covers both PIX and
	// tokenized card payments
	CreatePayment(ctx bCtx.Ctx, req PaymentCreateReq) (*PaymentResp, error)
}

type ClientCfg struct {
	AccessToken string
	Timeout     time.Duration
	// Api overrides the API base url, tests point it at a local server
	Api string
}

type Payer struct {
	Email          string          `json:"email"`
	Identification *Identification `json:"identification,omitempty"`
}

type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type PaymentCreateReq struct {
	TransactionAmount float64                `json:"transaction_amount"`
	Description       string                 `json:"description,omitempty"`
	PaymentMethodId   string                 `json:"payment_method_id"`
	Token             string                 `json:"token,omitempty"`
	Installments      int                    `json:"installments,omitempty"`
	Payer             Payer                  `json:"payer"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

type PaymentResp struct {
	Id                 int64               `json:"id"`
	Status             string              `json:"status"`
	StatusDetail       string              `json:"status_detail"`
	PointOfInteraction *PointOfInteraction `json:"point_of_interaction,omitempty"`
}

type PointOfInteraction struct {
	TransactionData TransactionData `json:"transaction_data"`
}

type TransactionData struct {
	QrCode       string `json:"qr_code"`
	QrCodeBase64 string `json:"qr_code_base64"`
	TicketUrl    string `json:"ticket_url"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
