package usecase

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/log"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/payment"
	"github.com/cryptorastas/marketplace-api/service/mercadopago"
)

type PaymentUseCaseCfg struct {
	MercadopagoClient mercadopago.Client
	// EthToBrlRate converts the quoted ETH price into BRL for the
	// processor, e.g. 18000 turns 0.01 ETH into 180.00 BRL
	EthToBrlRate decimal.Decimal
	// PixPayerEmail is the account email attached to PIX payments, the
	// processor requires one even for anonymous checkout
	PixPayerEmail  string
	CollectionName string
}

type impl struct {
	mercadopagoClient mercadopago.Client
	ethToBrlRate      decimal.Decimal
	pixPayerEmail     string
	collectionName    string
}

func New(cfg *PaymentUseCaseCfg) payment.UseCase {
	return &impl{
		mercadopagoClient: cfg.MercadopagoClient,
		ethToBrlRate:      cfg.EthToBrlRate,
		pixPayerEmail:     cfg.PixPayerEmail,
		collectionName:    cfg.CollectionName,
	}
}

func (im *impl) CreatePixPayment(ctx ctx.Ctx, req payment.PixPaymentReq) (*payment.PixPayment, error) {
	price, err := decimal.NewFromString(req.NftPrice)
	if err != nil {
		ctx.WithField("nftPrice", req.NftPrice).Warn("unparsable nft price")
		return nil, domain.ErrBadParamInput
	}
	amountBrl := price.Mul(im.ethToBrlRate).Round(2)
	amount, _ := amountBrl.Float64()

	resp, err := im.mercadopagoClient.CreatePayment(ctx, mercadopago.PaymentCreateReq{
		TransactionAmount: amount,
		Description:       im.collectionName + " #" + req.NftTokenId.String(),
		PaymentMethodId:   mercadopago.PaymentMethodPix,
		Payer:             mercadopago.Payer{Email: im.pixPayerEmail},
		Metadata: map[string]interface{}{
			"nft_token_id":   req.NftTokenId.String(),
			"wallet_address": req.WalletAddress.ToLowerStr(),
		},
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": req.NftTokenId,
		}).Error("failed to mercadopagoClient.CreatePayment")
		return nil, err
	}

	res := &payment.PixPayment{
		PaymentId: formatPaymentId(resp.Id),
		AmountBrl: amountBrl.StringFixed(2),
	}
	if resp.PointOfInteraction != nil {
		res.QrCode = resp.PointOfInteraction.TransactionData.QrCode
		res.TicketUrl = resp.PointOfInteraction.TransactionData.TicketUrl
	}
	return res, nil
}

func (im *impl) CreateCardPayment(ctx ctx.Ctx, req payment.CardPaymentReq) (*payment.CardPayment, error) {
	amountBrl, err := decimal.NewFromString(req.TransactionAmount)
	if err != nil {
		ctx.WithField("transactionAmount", req.TransactionAmount).Warn("unparsable transaction amount")
		return nil, domain.ErrBadParamInput
	}
	amount, _ := amountBrl.Round(2).Float64()

	resp, err := im.mercadopagoClient.CreatePayment(ctx, mercadopago.PaymentCreateReq{
		TransactionAmount: amount,
		Token:             req.Token,
		Installments:      req.Installments,
		PaymentMethodId:   req.PaymentMethodId,
		Payer: mercadopago.Payer{
			Email: req.Payer.Email,
			Identification: &mercadopago.Identification{
				Type:   req.Payer.Identification.Type,
				Number: req.Payer.Identification.Number,
			},
		},
	})
	if err != nil {
		ctx.WithField("err", err).Error("failed to mercadopagoClient.CreatePayment")
		return nil, err
	}

	if resp.Status != payment.StatusApproved {
		ctx.WithFields(log.Fields{
			"status": resp.Status,
			"detail": resp.StatusDetail,
		}).Info("card payment not approved")
		return nil, xerrors.Errorf("payment %s: %s: %w", resp.Status, resp.StatusDetail, domain.ErrPaymentRejected)
	}

	return &payment.CardPayment{
		PaymentId:    formatPaymentId(resp.Id),
		Status:       resp.Status,
		StatusDetail: resp.StatusDetail,
	}, nil
}

func formatPaymentId(id int64) string {
	return strconv.FormatInt(id, 10)
}
