package order

import (
	"github.com/cryptorastas/marketplace-api/domain"
)

// SeaportAddress is the settlement contract every fulfillment targets
const SeaportAddress = domain.Address("0x00000000000000ADc04C56Bf30aC9d3c0aAF14dC")

// BasicOrderTypeEthToErc721FullOpen is the only basic order variant the
// builder emits: native currency payment for a single ERC-721, full fill,
// open zone
const BasicOrderTypeEthToErc721FullOpen = 0

// ZeroConduitKey means the fulfiller transfers with direct approvals,
// never through a delegated conduit
const ZeroConduitKey = "0x0000000000000000000000000000000000000000000000000000000000000000"

type AdditionalRecipient struct {
	Amount    string         `json:"amount"`
	Recipient domain.Address `json:"recipient"`
}

// BasicOrderParameters is the flattened, call-ready argument of Seaport's
// fulfillBasicOrder. Every field is carried byte for byte from the listing,
// numeric strings are never reformatted.
type BasicOrderParameters struct {
	ConsiderationToken                domain.Address        `json:"considerationToken"`
	ConsiderationIdentifier           string                `json:"considerationIdentifier"`
	ConsiderationAmount               string                `json:"considerationAmount"`
	Offerer                           domain.Address        `json:"offerer"`
	Zone                              domain.Address        `json:"zone"`
	OfferToken                        domain.Address        `json:"offerToken"`
	OfferIdentifier                   string                `json:"offerIdentifier"`
	OfferAmount                       string                `json:"offerAmount"`
	BasicOrderType                    int                   `json:"basicOrderType"`
	StartTime                         string                `json:"startTime"`
	EndTime                           string                `json:"endTime"`
	ZoneHash                          string                `json:"zoneHash"`
	Salt                              string                `json:"salt"`
	OffererConduitKey                 string                `json:"offererConduitKey"`
	FulfillerConduitKey               string                `json:"fulfillerConduitKey"`
	TotalOriginalAdditionalRecipients int                   `json:"totalOriginalAdditionalRecipients"`
	AdditionalRecipients              []AdditionalRecipient `json:"additionalRecipients"`
	Signature                         string                `json:"signature"`
}

// BuildFulfillment flattens a listing into fulfillBasicOrder parameters and
// the native value to attach to the transaction. Pure, no network. The value
// is the order book's quoted price verbatim, not a recomputed sum, the quote
// already covers the additional recipients.
func BuildFulfillment(listing *Listing) (*BasicOrderParameters, string, error) {
	if err := listing.Validate(); err != nil {
		return nil, "", err
	}

	params := listing.ProtocolData.Parameters
	if len(params.Offer) != 1 {
		return nil, "", domain.ErrUnsupportedOrderType
	}
	offer := params.Offer[0]
	if offer.ItemType != ItemTypeErc721 {
		return nil, "", domain.ErrUnsupportedOrderType
	}
	if params.Consideration[0].ItemType != ItemTypeNative {
		return nil, "", domain.ErrUnsupportedOrderType
	}
	if params.OrderType != OrderTypeFullOpen {
		return nil, "", domain.ErrUnsupportedOrderType
	}

	primary := params.Consideration[0]
	rest := params.Consideration[1:]
	recipients := make([]AdditionalRecipient, 0, len(rest))
	for _, c := range rest {
		recipients = append(recipients, AdditionalRecipient{
			Amount:    c.StartAmount,
			Recipient: c.Recipient,
		})
	}

	return &BasicOrderParameters{
		ConsiderationToken:                primary.Token,
		ConsiderationIdentifier:           primary.IdentifierOrCriteria,
		ConsiderationAmount:               primary.StartAmount,
		Offerer:                           params.Offerer,
		Zone:                              params.Zone,
		OfferToken:                        offer.Token,
		OfferIdentifier:                   offer.IdentifierOrCriteria,
		OfferAmount:                       offer.StartAmount,
		BasicOrderType:                    BasicOrderTypeEthToErc721FullOpen,
		StartTime:                         params.StartTime,
		EndTime:                           params.EndTime,
		ZoneHash:                          params.ZoneHash,
		Salt:                              params.Salt,
		OffererConduitKey:                 params.ConduitKey,
		FulfillerConduitKey:               ZeroConduitKey,
		TotalOriginalAdditionalRecipients: len(rest),
		AdditionalRecipients:              recipients,
		Signature:                         listing.ProtocolData.Signature,
	}, listing.Price, nil
}
