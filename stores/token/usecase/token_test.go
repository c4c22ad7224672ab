package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/cryptorastas/marketplace-api/base/ctx"
	"github.com/cryptorastas/marketplace-api/domain"
	"github.com/cryptorastas/marketplace-api/service/alchemy"
	alchemyMocks "github.com/cryptorastas/marketplace-api/service/alchemy/mocks"
)

type tokenSuite struct {
	suite.Suite

	alchemy *alchemyMocks.Client
	im      *impl
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(tokenSuite))
}

func (s *tokenSuite) SetupTest() {
	s.alchemy = &alchemyMocks.Client{}
	s.im = New(&TokenUseCaseCfg{
		AlchemyClient:   s.alchemy,
		GalleryContract: "0x31d45de84fde2fb36575085e05754a4932dd5170",
		CollectionName:  "CryptoRasta",
	}).(*impl)
}

func (s *tokenSuite) TestGetOwnedTokens() {
	c := bCtx.Background()
	owner := domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952b")

	s.alchemy.On("GetNftsForOwner", c, owner, domain.Address("0x31d45de84fde2fb36575085e05754a4932dd5170")).
		Return(&alchemy.OwnedNftsResp{
			TotalCount: 2,
			OwnedNfts: []alchemy.OwnedNft{
				{
					TokenId:  "7",
					Title:    "Rasta OG",
					Contract: alchemy.NftContract{Address: "0x31d45de84fde2fb36575085e05754a4932dd5170"},
					Media:    []alchemy.Media{{Gateway: "https://img.example/7.png"}},
				},
				{
					TokenId:  "8",
					Contract: alchemy.NftContract{Address: "0x31d45de84fde2fb36575085e05754a4932dd5170"},
				},
			},
		}, nil)

	items, err := s.im.GetOwnedTokens(c, owner)
	s.Require().NoError(err)
	s.Require().Len(items, 2)

	s.Equal(domain.EthereumChainId, items[0].ChainId)
	s.Equal(domain.TokenId("7"), items[0].TokenId)
	s.Equal("Rasta OG", items[0].Name)
	s.Equal("https://img.example/7.png", items[0].ImageUrl)

	// missing metadata falls back to a synthesized name
	s.Equal("CryptoRasta #8", items[1].Name)
	s.Equal("", items[1].ImageUrl)
}

func (s *tokenSuite) TestGetOwnedTokensError() {
	c := bCtx.Background()
	owner := domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952b")

	s.alchemy.On("GetNftsForOwner", c, owner, domain.Address("0x31d45de84fde2fb36575085e05754a4932dd5170")).
		Return(nil, alchemy.ErrStatusCodeNotOk)

	_, err := s.im.GetOwnedTokens(c, owner)
	s.Require().ErrorIs(err, alchemy.ErrStatusCodeNotOk)
}
