package usecase

import (
	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/log"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/nftitem"
	"github.com/cryptorastas/marketplace-api/service/alchemy"
)

type TokenUseCaseCfg struct {
	AlchemyClient   alchemy.Client
	GalleryContract domain.Address
	CollectionName  string
}

type impl struct {
	alchemyClient   alchemy.Client
	galleryContract domain.Address
	collectionName  string
}

func New(cfg *TokenUseCaseCfg) nftitem.UseCase {
	return &impl{
		alchemyClient:   cfg.AlchemyClient,
		galleryContract: cfg.GalleryContract,
		collectionName:  cfg.CollectionName,
	}
}

func (im *impl) GetOwnedTokens(ctx ctx.Ctx, owner domain.Address) ([]nftitem.NftItem, error) {
	resp, err := im.alchemyClient.GetNftsForOwner(ctx, owner, im.galleryContract)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("failed to alchemyClient.GetNftsForOwner")
		return nil, err
	}

	items := make([]nftitem.NftItem, 0, len(resp.OwnedNfts))
	for _, nft := range resp.OwnedNfts {
		name := nft.Title
		if name == "" {
			name = nftitem.FallbackName(im.collectionName, nft.TokenId)
		}
		items = append(items, nftitem.NftItem{
			ChainId:         domain.EthereumChainId,
			ContractAddress: nft.Contract.Address,
			TokenId:         nft.TokenId,
			Name:            name,
			ImageUrl:        nft.ImageUrl(),
		})
	}
	return items, nil
}
