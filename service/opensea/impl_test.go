package opensea

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
)

const listingsBody = `{
	"next": "cursor-2",
	"listings": [
		{
			"order_hash": "0xdeadbeef",
			"chain": "ethereum",
			"price": {"current": {"currency": "ETH", "decimals": 18, "value": "1050000000000000000"}},
			"protocol_data": {
				"parameters": {
					"offerer": "0xseller",
					"zone": "0x0000000000000000000000000000000000000000",
					"offer": [
						{"itemType": 2, "token": "0x07cd221b2fe54094277a2f4e1c1bc6df14e63678", "identifierOrCriteria": "42", "startAmount": "1", "endAmount": "1"}
					],
					"consideration": [
						{"itemType": 0, "token": "0x0000000000000000000000000000000000000000", "identifierOrCriteria": "0", "startAmount": "1000000000000000000", "endAmount": "1000000000000000000", "recipient": "0xseller"},
						{"itemType": 0, "token": "0x0000000000000000000000000000000000000000", "identifierOrCriteria": "0", "startAmount": "50000000000000000", "endAmount": "50000000000000000", "recipient": "0xfee"}
					],
					"orderType": 0,
					"startTime": "1688000000",
					"endTime": "9999999999",
					"zoneHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
					"salt": "123",
					"conduitKey": "0x0000007b02230091a7ed01230072f7006a004d60a8d4e71d599b8104250f0000",
					"counter": "0"
				},
				"signature": "0xsig"
			}
		}
	]
}`

const nftBody = `{"nft": {"identifier": "42", "name": "CryptoRasta #42", "image_url": "https://img.example/42.png"}}`

func Test_GetListingsByCollection(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/listings/collection/cryptorastas-collection/all", r.URL.Path)
		req.Equal("20", r.URL.Query().Get("limit"))
		req.Equal("api_key", r.Header.Get("X-API-KEY"))
		w.Write([]byte(listingsBody))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    10 * time.Second,
		Apikey:     "api_key",
		Api:        srv.URL,
	})
	ctx := bCtx.Background()

	resp, err := c.GetListingsByCollection(ctx, "cryptorastas-collection", "")
	req.NoError(err)
	req.Equal("cursor-2", resp.Next)
	req.Len(resp.Listings, 1)

	listing := resp.Listings[0]
	req.Equal(domain.OrderHash("0xdeadbeef"), listing.OrderHash)
	req.Equal("1050000000000000000", listing.Price.Current.Value)
	req.Equal(int32(18), listing.Price.Current.Decimals)
	req.Len(listing.ProtocolData.Parameters.Offer, 1)
	req.Equal("42", listing.ProtocolData.Parameters.Offer[0].IdentifierOrCriteria)
	req.Len(listing.ProtocolData.Parameters.Consideration, 2)
	req.Equal("0xsig", listing.ProtocolData.Signature)
}

func Test_GetListingsByCollection_Cursor(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("cursor-2", r.URL.Query().Get("next"))
		w.Write([]byte(`{"next": "", "listings": []}`))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    10 * time.Second,
		Apikey:     "api_key",
		Api:        srv.URL,
	})

	resp, err := c.GetListingsByCollection(bCtx.Background(), "cryptorastas-collection", "cursor-2")
	req.NoError(err)
	req.Equal("", resp.Next)
	req.Len(resp.Listings, 0)
}

func Test_GetNft(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/chain/ethereum/contract/0x07cd221b2fe54094277a2f4e1c1bc6df14e63678/nfts/42", r.URL.Path)
		w.Write([]byte(nftBody))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    10 * time.Second,
		Apikey:     "api_key",
		Api:        srv.URL,
	})

	resp, err := c.GetNft(bCtx.Background(), "0x07CD221b2Fe54094277a2F4e1c1Bc6Df14E63678", "42")
	req.NoError(err)
	req.Equal(domain.TokenId("42"), resp.Nft.Identifier)
	req.Equal("CryptoRasta #42", resp.Nft.Name)
	req.Equal("https://img.example/42.png", resp.Nft.ImageUrl)
}

func Test_StatusNotOk(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    10 * time.Second,
		Apikey:     "api_key",
		Api:        srv.URL,
	})

	_, err := c.GetListingsByCollection(bCtx.Background(), "cryptorastas-collection", "")
	req.ErrorIs(err, ErrStatusCodeNotOk)
}
