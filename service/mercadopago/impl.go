package mercadopago

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/log"
)

const api = "https://api.mercadopago.com"

func NewClient(cfg *ClientCfg) Client {
	baseUrl := cfg.Api
	if baseUrl == "" {
		baseUrl = api
	}
	restyClient := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")
	return &client{
		client: restyClient,
	}
}

type client struct {
	client *resty.Client
}

func (c *client) CreatePayment(ctx bCtx.Ctx, req PaymentCreateReq) (*PaymentResp, error) {
	payment := &PaymentResp{}
	apiErr := &apiError{}
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Idempotency-Key", uuid.NewString()).
		SetBody(req).
		SetResult(payment).
		SetError(apiErr).
		Post("/v1/payments")
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("payment create request failed")
		return nil, err
	}
	if resp.IsError() {
		ctx.WithFields(log.Fields{
			"statusCode": resp.StatusCode(),
			"message":    apiErr.Message,
		}).Error("payment create rejected by processor")
		if apiErr.Message != "" {
			return nil, xerrors.Errorf("%s: %w", apiErr.Message, ErrPaymentCreate)
		}
		return nil, ErrPaymentCreate
	}
	return payment, nil
}
