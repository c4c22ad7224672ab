package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrMalformedListing will throw if an order book listing misses required
	// order parameters (empty consideration, missing offer, empty signature)
	ErrMalformedListing = errors.New("malformed listing")
	// ErrUnsupportedOrderType will throw if a listing cannot be expressed as a
	// basic full open order (multiple offer items, criteria offers, partial fills)
	ErrUnsupportedOrderType = errors.New("unsupported order type")

	// ErrWalletNotConnected will throw if no signer key is configured
	ErrWalletNotConnected = errors.New("wallet not connected")
	// ErrPurchaseInFlight will throw if another purchase is still pending
	ErrPurchaseInFlight = errors.New("another purchase is in flight")
	// ErrPurchaseDeclined will throw if the quoted price was not confirmed
	ErrPurchaseDeclined = errors.New("purchase declined")
	// ErrPaymentRejected will throw if the payment processor returns any
	// status other than approved
	ErrPaymentRejected = errors.New("payment rejected")

	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)
