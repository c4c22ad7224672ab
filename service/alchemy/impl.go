package alchemy

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/log"
	"github.com/cryptorastas/marketplace-api/domain"
)

const mainnetApi = "https://eth-mainnet.g.alchemy.com/nft/v2"

func NewClient(cfg *ClientCfg) Client {
	api := cfg.Api
	if api == "" {
		api = mainnetApi
	}
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 3
	httpClient.Logger = nil
	return &client{
		client:  httpClient,
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
		api:     api,
	}
}

type client struct {
	client  *retryablehttp.Client
	timeout time.Duration
	apikey  string
	api     string
}

func (c *client) GetNftsForOwner(ctx bCtx.Ctx, owner domain.Address, contract domain.Address) (*OwnedNftsResp, error) {
	base, err := url.Parse(fmt.Sprintf("%s/%s/getNFTsForOwner", c.api, c.apikey))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("owner", owner.ToLowerStr())
	params.Add("contractAddresses[]", contract.ToLowerStr())
	params.Add("withMetadata", "true")
	base.RawQuery = params.Encode()
	url := base.String()

	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("c.get failed")
		return nil, err
	}

	resp := OwnedNftsResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}

	return &resp, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := retryablehttp.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithField("statusCode", resp.StatusCode).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	return ioutil.ReadAll(resp.Body)
}
