package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/delivery"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/nftitem"
	"github.com/cryptorastas/marketplace-api/middleware"
)

type handler struct {
	nftitem nftitem.UseCase
}

func New(e *echo.Echo, nftitem nftitem.UseCase) {
	h := &handler{nftitem}

	g := e.Group("/accounts")
	g.GET("/:address/nfts", h.getOwnedTokens, middleware.IsValidAddress("address"))
}

func (h *handler) getOwnedTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := domain.Address(c.Param("address")).ToLower()
	items, err := h.nftitem.GetOwnedTokens(ctx, owner)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, items)
}
