package chain

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/log"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/order"
)

func NewClient(cfg *ClientCfg) (Client, error) {
	if cfg.RpcUrl == "" {
		return nil, ErrNoRpcEndpoint
	}
	ethClient, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, xerrors.Errorf("dial rpc: %w", err)
	}

	var signerKey *ecdsa.PrivateKey
	if cfg.SignerKey != "" {
		signerKey, err = crypto.HexToECDSA(cfg.SignerKey)
		if err != nil {
			return nil, xerrors.Errorf("parse signer key: %w", err)
		}
	}

	return &client{
		ethClient:  ethClient,
		signerKey:  signerKey,
		chainId:    cfg.ChainId,
		settlement: common.HexToAddress(string(cfg.Settlement)),
		timeout:    cfg.Timeout,
	}, nil
}

type client struct {
	ethClient  *ethclient.Client
	signerKey  *ecdsa.PrivateKey
	chainId    *big.Int
	settlement common.Address
	timeout    time.Duration
}

func (c *client) Address() (domain.Address, bool) {
	if c.signerKey == nil {
		return "", false
	}
	addr := crypto.PubkeyToAddress(c.signerKey.PublicKey)
	return domain.Address(addr.Hex()).ToLower(), true
}

func (c *client) FulfillBasicOrder(ctx bCtx.Ctx, params *order.BasicOrderParameters, value string) (domain.TxHash, error) {
	if c.signerKey == nil {
		return "", domain.ErrWalletNotConnected
	}

	nativeValue, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return "", domain.ErrMalformedListing
	}

	calldata, err := packFulfillBasicOrder(params)
	if err != nil {
		ctx.WithField("err", err).Error("packFulfillBasicOrder failed")
		return "", err
	}

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	from := crypto.PubkeyToAddress(c.signerKey.PublicKey)

	nonce, err := c.ethClient.PendingNonceAt(ctx, from)
	if err != nil {
		return "", xerrors.Errorf("pending nonce: %w", err)
	}

	tipCap, err := c.ethClient.SuggestGasTipCap(ctx)
	if err != nil {
		return "", xerrors.Errorf("suggest tip cap: %w", err)
	}

	head, err := c.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return "", xerrors.Errorf("head: %w", err)
	}
	feeCap := new(big.Int).Add(tipCap, new(big.Int).Mul(head.BaseFee, domain.Big2))

	gas, err := c.ethClient.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &c.settlement,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Value:     nativeValue,
		Data:      calldata,
	})
	if err != nil {
		// a filled or cancelled order reverts on estimation already,
		// surface it and let the caller retry with a fresh listing
		ctx.WithFields(log.Fields{
			"err":   err,
			"value": value,
		}).Error("estimate gas failed")
		return "", xerrors.Errorf("estimate gas: %w", err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.chainId,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &c.settlement,
		Value:     nativeValue,
		Data:      calldata,
	})

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainId), c.signerKey)
	if err != nil {
		return "", xerrors.Errorf("sign tx: %w", err)
	}

	if err := c.ethClient.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": signedTx.Hash().Hex(),
		}).Error("send transaction failed")
		return "", xerrors.Errorf("send tx: %w", err)
	}

	ctx.WithFields(log.Fields{
		"txHash": signedTx.Hash().Hex(),
		"value":  value,
	}).Info("fulfillment transaction broadcast")

	return domain.TxHash(signedTx.Hash().Hex()), nil
}

func (c *client) Ping(ctx bCtx.Ctx) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	if _, err := c.ethClient.BlockNumber(ctx); err != nil {
		ctx.WithField("err", err).Error("ping rpc failed")
		return err
	}
	return nil
}
