package alchemy

import (
	"errors"
	"time"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

type Client interface {
	// GetNftsForOwner returns the owner's tokens within a single contract
	GetNftsForOwner(ctx bCtx.Ctx, owner domain.Address, contract domain.Address) (*OwnedNftsResp, error)
}

type ClientCfg struct {
	Timeout time.Duration
	Apikey  string
	// Api overrides the API base url, tests point it at a local server
	Api string
}

type OwnedNftsResp struct {
	OwnedNfts  []OwnedNft `json:"ownedNfts"`
	TotalCount int        `json:"totalCount"`
}

type OwnedNft struct {
	TokenId  domain.TokenId `json:"tokenId"`
	Title    string         `json:"title"`
	Contract NftContract    `json:"contract"`
	Media    []Media        `json:"media"`
}

type NftContract struct {
	Address domain.Address `json:"address"`
}

type Media struct {
	Gateway   string `json:"gateway"`
	Thumbnail string `json:"thumbnail"`
	Raw       string `json:"raw"`
}

// ImageUrl picks the best available media url, gateway first
func (n OwnedNft) ImageUrl() string {
	for _, m := range n.Media {
		if m.Gateway != "" {
			return m.Gateway
		}
		if m.Thumbnail != "" {
			return m.Thumbnail
		}
		if m.Raw != "" {
			return m.Raw
		}
	}
	return ""
}
