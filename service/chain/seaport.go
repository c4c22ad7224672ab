package chain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/domain/order"
)

// fulfillBasicOrder(BasicOrderParameters) payable returns (bool)
const seaportAbiJson = `[
	{
		"inputs": [
			{
				"components": [
					{"internalType": "address", "name": "considerationToken", "type": "address"},
					{"internalType": "uint256", "name": "considerationIdentifier", "type": "uint256"},
					{"internalType": "uint256", "name": "considerationAmount", "type": "uint256"},
					{"internalType": "address payable", "name": "offerer", "type": "address"},
					{"internalType": "address", "name": "zone", "type": "address"},
					{"internalType": "address", "name": "offerToken", "type": "address"},
					{"internalType": "uint256", "name": "offerIdentifier", "type": "uint256"},
					{"internalType": "uint256", "name": "offerAmount", "type": "uint256"},
					{"internalType": "enum BasicOrderType", "name": "basicOrderType", "type": "uint8"},
					{"internalType": "uint256", "name": "startTime", "type": "uint256"},
					{"internalType": "uint256", "name": "endTime", "type": "uint256"},
					{"internalType": "bytes32", "name": "zoneHash", "type": "bytes32"},
					{"internalType": "uint256", "name": "salt", "type": "uint256"},
					{"internalType": "bytes32", "name": "offererConduitKey", "type": "bytes32"},
					{"internalType": "bytes32", "name": "fulfillerConduitKey", "type": "bytes32"},
					{"internalType": "uint256", "name": "totalOriginalAdditionalRecipients", "type": "uint256"},
					{
						"components": [
							{"internalType": "uint256", "name": "amount", "type": "uint256"},
							{"internalType": "address payable", "name": "recipient", "type": "address"}
						],
						"internalType": "struct AdditionalRecipient[]",
						"name": "additionalRecipients",
						"type": "tuple[]"
					},
					{"internalType": "bytes", "name": "signature", "type": "bytes"}
				],
				"internalType": "struct BasicOrderParameters",
				"name": "parameters",
				"type": "tuple"
			}
		],
		"name": "fulfillBasicOrder",
		"outputs": [{"internalType": "bool", "name": "fulfilled", "type": "bool"}],
		"stateMutability": "payable",
		"type": "function"
	}
]`

var seaportAbi = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(seaportAbiJson))
	if err != nil {
		panic(err)
	}
	return parsed
}()

type additionalRecipientTuple struct {
	Amount    *big.Int
	Recipient common.Address
}

type basicOrderTuple struct {
	ConsiderationToken                common.Address
	ConsiderationIdentifier           *big.Int
	ConsiderationAmount               *big.Int
	Offerer                           common.Address
	Zone                              common.Address
	OfferToken                        common.Address
	OfferIdentifier                   *big.Int
	OfferAmount                       *big.Int
	BasicOrderType                    uint8
	StartTime                         *big.Int
	EndTime                           *big.Int
	ZoneHash                          [32]byte
	Salt                              *big.Int
	OffererConduitKey                 [32]byte
	FulfillerConduitKey               [32]byte
	TotalOriginalAdditionalRecipients *big.Int
	AdditionalRecipients              []additionalRecipientTuple
	Signature                         []byte
}

// packFulfillBasicOrder converts builder output into abi types and packs the
// fulfillBasicOrder calldata. Any unparsable numeric string means the
// listing was malformed upstream.
func packFulfillBasicOrder(params *order.BasicOrderParameters) ([]byte, error) {
	nums, err := domain.ToBigInt([]string{
		params.ConsiderationIdentifier,
		params.ConsiderationAmount,
		params.OfferIdentifier,
		params.OfferAmount,
		params.StartTime,
		params.EndTime,
	})
	if err != nil {
		return nil, domain.ErrMalformedListing
	}

	salt, err := parseUint256(params.Salt)
	if err != nil {
		return nil, domain.ErrMalformedListing
	}

	signature, err := hexutil.Decode(params.Signature)
	if err != nil {
		return nil, domain.ErrMalformedListing
	}

	recipients := make([]additionalRecipientTuple, 0, len(params.AdditionalRecipients))
	for _, r := range params.AdditionalRecipients {
		amount, ok := new(big.Int).SetString(r.Amount, 10)
		if !ok {
			return nil, domain.ErrMalformedListing
		}
		recipients = append(recipients, additionalRecipientTuple{
			Amount:    amount,
			Recipient: common.HexToAddress(string(r.Recipient)),
		})
	}

	tuple := basicOrderTuple{
		ConsiderationToken:                common.HexToAddress(string(params.ConsiderationToken)),
		ConsiderationIdentifier:           nums[0],
		ConsiderationAmount:               nums[1],
		Offerer:                           common.HexToAddress(string(params.Offerer)),
		Zone:                              common.HexToAddress(string(params.Zone)),
		OfferToken:                        common.HexToAddress(string(params.OfferToken)),
		OfferIdentifier:                   nums[2],
		OfferAmount:                       nums[3],
		BasicOrderType:                    uint8(params.BasicOrderType),
		StartTime:                         nums[4],
		EndTime:                           nums[5],
		ZoneHash:                          common.HexToHash(params.ZoneHash),
		Salt:                              salt,
		OffererConduitKey:                 common.HexToHash(params.OffererConduitKey),
		FulfillerConduitKey:               common.HexToHash(params.FulfillerConduitKey),
		TotalOriginalAdditionalRecipients: big.NewInt(int64(params.TotalOriginalAdditionalRecipients)),
		AdditionalRecipients:              recipients,
		Signature:                         signature,
	}

	return seaportAbi.Pack("fulfillBasicOrder", tuple)
}

// parseUint256 accepts both the decimal and the 0x-prefixed form the order
// book uses for salts
func parseUint256(s string) (*big.Int, error) {
	var (
		n  *big.Int
		ok bool
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		n, ok = new(big.Int).SetString(s, 10)
	}
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return n, nil
}
