package chain

import (
	"errors"
	"math/big"
	"time"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/order"
)

var (
	ErrNoRpcEndpoint = errors.New("no rpc endpoint configured")
)

// Client is the wallet side of a purchase: it holds the buyer key and
// broadcasts settlement transactions. The fulfillment parameters are handed
// over unchanged from the builder.
type Client interface {
	// Address returns the connected wallet address, false when no signer
	// key is configured
	Address() (domain.Address, bool)
	// FulfillBasicOrder packs fulfillBasicOrder calldata, attaches value in
	// wei and broadcasts the signed transaction to the settlement contract
	FulfillBasicOrder(ctx bCtx.Ctx, params *order.BasicOrderParameters, value string) (domain.TxHash, error)
	// Ping checks rpc liveness
	Ping(ctx bCtx.Ctx) error
}

type ClientCfg struct {
	RpcUrl string
	// SignerKey is the buyer's hot wallet key in hex, empty means no wallet
	// is connected and purchases are rejected
	SignerKey  string
	ChainId    *big.Int
	Settlement domain.Address
	Timeout    time.Duration
}
