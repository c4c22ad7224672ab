package payment

import (
	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
)

// StatusApproved is the only processor status treated as success, anything
// else (pending included) fails the purchase attempt
const StatusApproved = "approved"

type PixPaymentReq struct {
	NftTokenId domain.TokenId `json:"nftTokenId" validate:"required"`
	// NftPrice is the quoted price in ETH as a decimal string
	NftPrice      string         `json:"nftPrice" validate:"required"`
	WalletAddress domain.Address `json:"walletAddress" validate:"required"`
}

type PixPayment struct {
	PaymentId string `json:"payment_id"`
	AmountBrl string `json:"amount_brl"`
	QrCode    string `json:"qr_code,omitempty"`
	TicketUrl string `json:"ticket_url,omitempty"`
}

type Payer struct {
	Email          string         `json:"email" validate:"required,email"`
	Identification Identification `json:"identification"`
}

type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type CardPaymentReq struct {
	Token             string `json:"token" validate:"required"`
	TransactionAmount string `json:"transaction_amount" validate:"required"`
	Installments      int    `json:"installments"`
	PaymentMethodId   string `json:"payment_method_id" validate:"required"`
	Payer             Payer  `json:"payer"`
}

type CardPayment struct {
	PaymentId    string `json:"id"`
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
}

type UseCase interface {
	CreatePixPayment(ctx ctx.Ctx, req PixPaymentReq) (*PixPayment, error)
	CreateCardPayment(ctx ctx.Ctx, req CardPaymentReq) (*CardPayment, error)
}
