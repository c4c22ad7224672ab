package usecase

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/log"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/nftitem"
	"github.com/cryptorastas/marketplace-api/domain/order"
	"github.com/cryptorastas/marketplace-api/service/chain"
	"github.com/cryptorastas/marketplace-api/service/opensea"
)

type ListingUseCaseCfg struct {
	OpenseaClient     opensea.Client
	ChainClient       chain.Client
	CollectionSlug    string
	CollectionName    string
	CollectionAddress domain.Address
	MetadataCacheTtl  time.Duration
}

type nftMetadata struct {
	name     string
	imageUrl string
}

type impl struct {
	openseaClient     opensea.Client
	chainClient       chain.Client
	collectionSlug    string
	collectionName    string
	collectionAddress domain.Address
	metadataCache     *gocache.Cache

	// advisory guard, one purchase in flight per process. The same order
	// racing another buyer is resolved on chain and surfaces as a failed
	// purchase.
	purchaseMu sync.Mutex
	purchasing bool
}

func New(cfg *ListingUseCaseCfg) order.UseCase {
	ttl := cfg.MetadataCacheTtl
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &impl{
		openseaClient:     cfg.OpenseaClient,
		chainClient:       cfg.ChainClient,
		collectionSlug:    cfg.CollectionSlug,
		collectionName:    cfg.CollectionName,
		collectionAddress: cfg.CollectionAddress,
		metadataCache:     gocache.New(ttl, 2*ttl),
	}
}

// GetListings performs exactly one order book fetch, pagination is cursor
// driven by the caller
func (im *impl) GetListings(ctx ctx.Ctx, cursor string) (*order.ListingPage, error) {
	resp, err := im.openseaClient.GetListingsByCollection(ctx, im.collectionSlug, cursor)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"slug": im.collectionSlug,
		}).Error("failed to openseaClient.GetListingsByCollection")
		return nil, err
	}

	items := make([]order.ListingItem, 0, len(resp.Listings))
	for _, listing := range resp.Listings {
		offer := listing.ProtocolData.Parameters.Offer
		if len(offer) == 0 {
			ctx.WithField("orderHash", listing.OrderHash).Warn("listing without offer item, skipped")
			continue
		}
		tokenId := domain.TokenId(offer[0].IdentifierOrCriteria)

		displayPrice, err := toDisplayPrice(listing.Price.Current.Value, listing.Price.Current.Decimals)
		if err != nil {
			ctx.WithFields(log.Fields{
				"orderHash": listing.OrderHash,
				"price":     listing.Price.Current.Value,
			}).Warn("listing with unparsable price, skipped")
			continue
		}

		meta := im.getMetadata(ctx, tokenId)
		items = append(items, order.ListingItem{
			TokenId:      tokenId,
			Name:         meta.name,
			ImageUrl:     meta.imageUrl,
			Price:        listing.Price.Current.Value,
			DisplayPrice: displayPrice,
			OrderHash:    listing.OrderHash,
		})
	}

	return &order.ListingPage{Items: items, Next: resp.Next}, nil
}

func (im *impl) Purchase(ctx ctx.Ctx, req order.PurchaseReq) (*order.PurchaseResult, error) {
	if err := im.acquirePurchase(); err != nil {
		return nil, err
	}
	defer im.releasePurchase()

	if _, connected := im.chainClient.Address(); !connected {
		return nil, domain.ErrWalletNotConnected
	}

	listing, decimals, err := im.findListing(ctx, req.OrderHash)
	if err != nil {
		return nil, err
	}

	displayPrice, err := toDisplayPrice(listing.Price, decimals)
	if err != nil {
		return nil, domain.ErrMalformedListing
	}
	if req.ConfirmedPrice != displayPrice {
		ctx.WithFields(log.Fields{
			"confirmed": req.ConfirmedPrice,
			"quoted":    displayPrice,
		}).Info("quoted price not confirmed")
		return nil, domain.ErrPurchaseDeclined
	}

	params, value, err := order.BuildFulfillment(listing)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": req.OrderHash,
		}).Error("failed to order.BuildFulfillment")
		return nil, err
	}

	txHash, err := im.chainClient.FulfillBasicOrder(ctx, params, value)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"orderHash": req.OrderHash,
		}).Error("failed to chainClient.FulfillBasicOrder")
		return nil, err
	}

	ctx.WithFields(log.Fields{
		"orderHash": req.OrderHash,
		"txHash":    txHash,
	}).Info("purchase broadcast")

	return &order.PurchaseResult{TxHash: txHash}, nil
}

func (im *impl) acquirePurchase() error {
	im.purchaseMu.Lock()
	defer im.purchaseMu.Unlock()
	if im.purchasing {
		return domain.ErrPurchaseInFlight
	}
	im.purchasing = true
	return nil
}

func (im *impl) releasePurchase() {
	im.purchaseMu.Lock()
	defer im.purchaseMu.Unlock()
	im.purchasing = false
}

func (im *impl) findListing(ctx ctx.Ctx, orderHash domain.OrderHash) (*order.Listing, int32, error) {
	resp, err := im.openseaClient.GetListingsByCollection(ctx, im.collectionSlug, "")
	if err != nil {
		ctx.WithField("err", err).Error("failed to openseaClient.GetListingsByCollection")
		return nil, 0, err
	}
	for _, listing := range resp.Listings {
		if listing.OrderHash.ToLower() == orderHash.ToLower() {
			return &order.Listing{
				OrderHash:     listing.OrderHash,
				Price:         listing.Price.Current.Value,
				PriceDecimals: listing.Price.Current.Decimals,
				ProtocolData:  listing.ProtocolData,
			}, listing.Price.Current.Decimals, nil
		}
	}
	return nil, 0, domain.ErrNotFound
}

func (im *impl) getMetadata(ctx ctx.Ctx, tokenId domain.TokenId) nftMetadata {
	if cached, ok := im.metadataCache.Get(tokenId.String()); ok {
		return cached.(nftMetadata)
	}

	meta := nftMetadata{name: nftitem.FallbackName(im.collectionName, tokenId)}
	resp, err := im.openseaClient.GetNft(ctx, im.collectionAddress, tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Warn("failed to openseaClient.GetNft, using fallback name")
		return meta
	}
	if resp.Nft.Name != "" {
		meta.name = resp.Nft.Name
	}
	meta.imageUrl = resp.Nft.ImageUrl

	im.metadataCache.SetDefault(tokenId.String(), meta)
	return meta
}

// toDisplayPrice converts a wei amount into the human readable price the
// buyer confirms, e.g. "1050000000000000000" at 18 decimals is "1.05"
func toDisplayPrice(value string, decimals int32) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", err
	}
	return d.Shift(-decimals).String(), nil
}
