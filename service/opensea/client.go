package opensea

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/order"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// PageSize is the fixed page size for collection listing queries
const PageSize = 20

type Client interface {
	// GetListingsByCollection returns one page of active listings for a
	// collection slug, cursor is empty for the first page
	GetListingsByCollection(ctx bCtx.Ctx, slug string, cursor string) (*ListingsResp, error)
	// GetNft returns display metadata for a single token
	GetNft(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (*NftResp, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	// Api overrides the API base url, tests point it at a local server
	Api string
}

type SellListing struct {
	OrderHash    domain.OrderHash   `json:"order_hash"`
	Chain        string             `json:"chain"`
	Price        ListingPrice       `json:"price"`
	ProtocolData order.ProtocolData `json:"protocol_data"`
}

type ListingPrice struct {
	Current CurrentPrice `json:"current"`
}

type CurrentPrice struct {
	Currency string `json:"currency"`
	Decimals int32  `json:"decimals"`
	Value    string `json:"value"`
}

type ListingsResp struct {
	Next     string        `json:"next"`
	Listings []SellListing `json:"listings"`
}

type NftResp struct {
	Nft Nft `json:"nft"`
}

type Nft struct {
	Identifier domain.TokenId `json:"identifier"`
	Name       string         `json:"name"`
	ImageUrl   string         `json:"image_url"`
}
