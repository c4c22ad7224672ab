package chain

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/order"
)

func basicParams() *order.BasicOrderParameters {
	return &order.BasicOrderParameters{
		ConsiderationToken:                domain.EmptyAddress,
		ConsiderationIdentifier:           "0",
		ConsiderationAmount:               "1000000000000000000",
		Offerer:                           "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		Zone:                              "0x0000000000000000000000000000000000000000",
		OfferToken:                        "0x07cd221b2fe54094277a2f4e1c1bc6df14e63678",
		OfferIdentifier:                   "42",
		OfferAmount:                       "1",
		BasicOrderType:                    order.BasicOrderTypeEthToErc721FullOpen,
		StartTime:                         "1688000000",
		EndTime:                           "9999999999",
		ZoneHash:                          "0x0000000000000000000000000000000000000000000000000000000000000000",
		Salt:                              "123",
		OffererConduitKey:                 "0x0000007b02230091a7ed01230072f7006a004d60a8d4e71d599b8104250f0000",
		FulfillerConduitKey:               order.ZeroConduitKey,
		TotalOriginalAdditionalRecipients: 1,
		AdditionalRecipients: []order.AdditionalRecipient{
			{Amount: "50000000000000000", Recipient: "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"},
		},
		Signature: "0x1b496f4021176f140e1cf41f956eba853af07dde2d75e4bd66935eb283a8bf38",
	}
}

func TestPackFulfillBasicOrder(t *testing.T) {
	req := require.New(t)

	calldata, err := packFulfillBasicOrder(basicParams())
	req.NoError(err)

	// 4 byte selector plus at least the static tuple head
	req.Greater(len(calldata), 4+17*32)
	req.Equal(seaportAbi.Methods["fulfillBasicOrder"].ID, calldata[:4])

	// packing is deterministic
	again, err := packFulfillBasicOrder(basicParams())
	req.NoError(err)
	req.Equal(calldata, again)
}

func TestPackFulfillBasicOrderUnpacksBack(t *testing.T) {
	req := require.New(t)

	calldata, err := packFulfillBasicOrder(basicParams())
	req.NoError(err)

	values, err := seaportAbi.Methods["fulfillBasicOrder"].Inputs.Unpack(calldata[4:])
	req.NoError(err)
	req.Len(values, 1)

	tuple := *abi.ConvertType(values[0], new(basicOrderTuple)).(*basicOrderTuple)
	req.Equal("1000000000000000000", tuple.ConsiderationAmount.String())
	req.Equal(common.HexToAddress("0x07cd221b2fe54094277a2f4e1c1bc6df14e63678"), tuple.OfferToken)
	req.Equal("42", tuple.OfferIdentifier.String())
	req.Equal(uint8(0), tuple.BasicOrderType)
	req.Equal([32]byte{}, tuple.FulfillerConduitKey)
	req.Len(tuple.AdditionalRecipients, 1)
	req.Equal("50000000000000000", tuple.AdditionalRecipients[0].Amount.String())
}

func TestPackFulfillBasicOrderMalformedNumbers(t *testing.T) {
	req := require.New(t)

	badAmount := basicParams()
	badAmount.ConsiderationAmount = "one ether"
	_, err := packFulfillBasicOrder(badAmount)
	req.ErrorIs(err, domain.ErrMalformedListing)

	badSignature := basicParams()
	badSignature.Signature = "not hex"
	_, err = packFulfillBasicOrder(badSignature)
	req.ErrorIs(err, domain.ErrMalformedListing)

	badRecipient := basicParams()
	badRecipient.AdditionalRecipients[0].Amount = "x"
	_, err = packFulfillBasicOrder(badRecipient)
	req.ErrorIs(err, domain.ErrMalformedListing)
}

func TestParseUint256(t *testing.T) {
	req := require.New(t)

	n, err := parseUint256("123")
	req.NoError(err)
	req.Equal("123", n.String())

	n, err = parseUint256("0xff")
	req.NoError(err)
	req.Equal("255", n.String())

	_, err = parseUint256("zz")
	req.ErrorIs(err, domain.ErrInvalidNumberFormat)
}
