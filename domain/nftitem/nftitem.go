package nftitem

import (
	"fmt"

	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
)

type NftItem struct {
	ChainId         domain.ChainId `json:"chainId"`
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	Name            string         `json:"name"`
	ImageUrl        string         `json:"imageUrl"`
}

// FallbackName synthesizes a display name for tokens whose metadata
// carries no name
func FallbackName(collectionName string, tokenId domain.TokenId) string {
	return fmt.Sprintf("%s #%s", collectionName, tokenId)
}

type UseCase interface {
	GetOwnedTokens(ctx ctx.Ctx, owner domain.Address) ([]NftItem, error)
}
