package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/delivery"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/payment"
)

type handler struct {
	payment payment.UseCase
}

func New(e *echo.Echo, payment payment.UseCase) {
	h := &handler{payment}

	g := e.Group("/payments")
	g.POST("/pix", h.createPixPayment)
	g.POST("/card", h.createCardPayment)
}

func (h *handler) createPixPayment(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &payment.PixPaymentReq{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.payment.CreatePixPayment(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) createCardPayment(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &payment.CardPaymentReq{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.payment.CreateCardPayment(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
