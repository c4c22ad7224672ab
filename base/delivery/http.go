package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cryptorastas/marketplace-api/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrMalformedListing), errors.Is(err, domain.ErrUnsupportedOrderType):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrPurchaseInFlight):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrWalletNotConnected), errors.Is(err, domain.ErrPurchaseDeclined), errors.Is(err, domain.ErrPaymentRejected):
			status = http.StatusUnprocessableEntity
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
