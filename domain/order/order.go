package order

import (
	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
)

// Seaport item types
const (
	ItemTypeNative              = 0
	ItemTypeErc20               = 1
	ItemTypeErc721              = 2
	ItemTypeErc1155             = 3
	ItemTypeErc721WithCriteria  = 4
	ItemTypeErc1155WithCriteria = 5
)

// Seaport order types
const (
	OrderTypeFullOpen          = 0
	OrderTypePartialOpen       = 1
	OrderTypeFullRestricted    = 2
	OrderTypePartialRestricted = 3
)

type OfferItem struct {
	ItemType             int            `json:"itemType"`
	Token                domain.Address `json:"token"`
	IdentifierOrCriteria string         `json:"identifierOrCriteria"`
	StartAmount          string         `json:"startAmount"`
	EndAmount            string         `json:"endAmount"`
}

type ConsiderationItem struct {
	ItemType             int            `json:"itemType"`
	Token                domain.Address `json:"token"`
	IdentifierOrCriteria string         `json:"identifierOrCriteria"`
	StartAmount          string         `json:"startAmount"`
	EndAmount            string         `json:"endAmount"`
	Recipient            domain.Address `json:"recipient"`
}

// Parameters is the signed order body as published by the order book.
// Amounts and identifiers stay base-10 strings end to end, the order
// book quotes uint256 values that do not fit in int64.
type Parameters struct {
	Offerer       domain.Address      `json:"offerer"`
	Zone          domain.Address      `json:"zone"`
	Offer         []OfferItem         `json:"offer"`
	Consideration []ConsiderationItem `json:"consideration"`
	OrderType     int                 `json:"orderType"`
	StartTime     string              `json:"startTime"`
	EndTime       string              `json:"endTime"`
	ZoneHash      string              `json:"zoneHash"`
	Salt          string              `json:"salt"`
	ConduitKey    string              `json:"conduitKey"`
	Counter       string              `json:"counter"`
}

type ProtocolData struct {
	Parameters Parameters `json:"parameters"`
	Signature  string     `json:"signature"`
}

// Listing is a signed, off-chain published offer to sell one NFT.
// Price is the order book's quoted current price in wei and already
// includes every additional fee recipient.
type Listing struct {
	OrderHash     domain.OrderHash `json:"orderHash"`
	Price         string           `json:"price"`
	PriceDecimals int32            `json:"priceDecimals"`
	ProtocolData  ProtocolData     `json:"protocolData"`
}

// Validate fails closed on listings the order book returned with missing
// order parameters
func (l *Listing) Validate() error {
	params := l.ProtocolData.Parameters
	if len(params.Offer) == 0 {
		return domain.ErrMalformedListing
	}
	if len(params.Consideration) == 0 {
		return domain.ErrMalformedListing
	}
	if l.ProtocolData.Signature == "" {
		return domain.ErrMalformedListing
	}
	if l.Price == "" {
		return domain.ErrMalformedListing
	}
	return nil
}

// ListingItem is a listing joined with token metadata for browsing
type ListingItem struct {
	TokenId      domain.TokenId   `json:"tokenId"`
	Name         string           `json:"name"`
	ImageUrl     string           `json:"imageUrl"`
	Price        string           `json:"price"`
	DisplayPrice string           `json:"displayPrice"`
	OrderHash    domain.OrderHash `json:"orderHash"`
}

type ListingPage struct {
	Items []ListingItem `json:"items"`
	Next  string        `json:"next"`
}

type PurchaseReq struct {
	OrderHash domain.OrderHash `json:"orderHash" validate:"required"`
	// ConfirmedPrice is the human readable price the buyer saw and
	// accepted, must equal the current quote
	ConfirmedPrice string `json:"confirmedPrice"`
}

type PurchaseResult struct {
	TxHash domain.TxHash `json:"txHash"`
}

type UseCase interface {
	GetListings(ctx ctx.Ctx, cursor string) (*ListingPage, error)
	Purchase(ctx ctx.Ctx, req PurchaseReq) (*PurchaseResult, error)
}
