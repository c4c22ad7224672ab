package main

import (
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/base/log"
	bValidator "github.com/cryptorastas/marketplace-api/base/validator"
	"github.com/cryptorastas/marketplace-api/domain"
	mmiddleware "github.com/cryptorastas/marketplace-api/middleware"
	"github.com/cryptorastas/marketplace-api/service/alchemy"
	"github.com/cryptorastas/marketplace-api/service/chain"
	"github.com/cryptorastas/marketplace-api/service/mercadopago"
	"github.com/cryptorastas/marketplace-api/service/opensea"
	hc_delivery "github.com/cryptorastas/marketplace-api/stores/healthcheck/delivery/http"
	hc_repo "github.com/cryptorastas/marketplace-api/stores/healthcheck/repository"
	hc_usecase "github.com/cryptorastas/marketplace-api/stores/healthcheck/usecase"
	listing_delivery "github.com/cryptorastas/marketplace-api/stores/listing/delivery/http"
	listing_usecase "github.com/cryptorastas/marketplace-api/stores/listing/usecase"
	payment_delivery "github.com/cryptorastas/marketplace-api/stores/payment/delivery/http"
	payment_usecase "github.com/cryptorastas/marketplace-api/stores/payment/usecase"
	token_delivery "github.com/cryptorastas/marketplace-api/stores/token/delivery/http"
	token_usecase "github.com/cryptorastas/marketplace-api/stores/token/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	httpTimeout := viper.GetDuration("http.timeout")

	context.Info("init chain client")
	chainClient, err := chain.NewClient(&chain.ClientCfg{
		RpcUrl:     viper.GetString("chain.rpcUrl"),
		SignerKey:  viper.GetString("chain.signerKey"),
		ChainId:    big.NewInt(viper.GetInt64("chain.chainId")),
		Settlement: domain.Address(viper.GetString("chain.settlement")),
		Timeout:    httpTimeout,
	})
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to init chain client")
	}

	openseaClient := opensea.NewClient(&opensea.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("opensea.apikey"),
	})

	alchemyClient := alchemy.NewClient(&alchemy.ClientCfg{
		Timeout: httpTimeout,
		Apikey:  viper.GetString("alchemy.apikey"),
	})

	mercadopagoClient := mercadopago.NewClient(&mercadopago.ClientCfg{
		AccessToken: viper.GetString("mercadopago.accessToken"),
		Timeout:     httpTimeout,
	})

	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		OpenseaClient:     openseaClient,
		ChainClient:       chainClient,
		CollectionSlug:    viper.GetString("collection.slug"),
		CollectionName:    viper.GetString("collection.name"),
		CollectionAddress: domain.Address(viper.GetString("collection.address")),
		MetadataCacheTtl:  viper.GetDuration("collection.metadataCacheTtl"),
	})

	token := token_usecase.New(&token_usecase.TokenUseCaseCfg{
		AlchemyClient:   alchemyClient,
		GalleryContract: domain.Address(viper.GetString("collection.galleryAddress")),
		CollectionName:  viper.GetString("collection.name"),
	})

	ethToBrlRate, err := decimal.NewFromString(viper.GetString("payment.ethToBrlRate"))
	if err != nil {
		log.Log().WithField("err", err).Panic("invalid payment.ethToBrlRate")
	}
	payment := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		MercadopagoClient: mercadopagoClient,
		EthToBrlRate:      ethToBrlRate,
		PixPayerEmail:     viper.GetString("payment.pixPayerEmail"),
		CollectionName:    viper.GetString("collection.name"),
	})

	healthCheckRepo := hc_repo.New(chainClient)
	healthCheck := hc_usecase.New(healthCheckRepo)

	hc_delivery.New(e, healthCheck)
	listing_delivery.New(e, listing)
	token_delivery.New(e, token)
	payment_delivery.New(e, payment)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
