package alchemy

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
)

const ownedNftsBody = `{
	"totalCount": 2,
	"ownedNfts": [
		{
			"tokenId": "7",
			"title": "CryptoRasta #7",
			"contract": {"address": "0x31d45de84fde2fb36575085e05754a4932dd5170"},
			"media": [{"gateway": "https://img.example/7.png"}]
		},
		{
			"tokenId": "8",
			"title": "",
			"contract": {"address": "0x31d45de84fde2fb36575085e05754a4932dd5170"},
			"media": [{"thumbnail": "https://img.example/8-thumb.png"}]
		}
	]
}`

func Test_GetNftsForOwner(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/test_key/getNFTsForOwner", r.URL.Path)
		req.Equal("0xowner", r.URL.Query().Get("owner"))
		req.Equal("0x31d45de84fde2fb36575085e05754a4932dd5170", r.URL.Query().Get("contractAddresses[]"))
		w.Write([]byte(ownedNftsBody))
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		Timeout: 10 * time.Second,
		Apikey:  "test_key",
		Api:     srv.URL,
	})

	resp, err := c.GetNftsForOwner(bCtx.Background(), "0xOwner", "0x31d45de84fDE2fB36575085e05754a4932DD5170")
	req.NoError(err)
	req.Equal(2, resp.TotalCount)
	req.Len(resp.OwnedNfts, 2)
	req.Equal(domain.TokenId("7"), resp.OwnedNfts[0].TokenId)
	req.Equal("https://img.example/7.png", resp.OwnedNfts[0].ImageUrl())
	req.Equal("https://img.example/8-thumb.png", resp.OwnedNfts[1].ImageUrl())
}

func Test_GetNftsForOwner_StatusNotOk(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{
		Timeout: 10 * time.Second,
		Apikey:  "test_key",
		Api:     srv.URL,
	})

	_, err := c.GetNftsForOwner(bCtx.Background(), "0xOwner", "0xcontract")
	req.ErrorIs(err, ErrStatusCodeNotOk)
}
