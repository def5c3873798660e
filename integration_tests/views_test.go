package integration_tests

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	v2controllers "github.com/markethub/markethub.go/controllers_v2"
	"github.com/markethub/markethub.go/lib"
	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
	"github.com/markethub/markethub.go/lib/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MarketViewsTestSuite struct {
	TestSuite
	service     *service.MarketService
	sellerToken string
	buyerToken  string
	sellerId    int64
	buyerId     int64
}

func (suite *MarketViewsTestSuite) SetupSuite() {
	svc, err := marketTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	_, userTokens, err := createUsers(svc, 2)
	if err != nil {
		log.Fatalf("Error creating test users: %v", err)
	}
	suite.service = svc
	suite.sellerToken = userTokens[0]
	suite.buyerToken = userTokens[1]
	suite.sellerId = getUserIdFromToken(suite.sellerToken)
	suite.buyerId = getUserIdFromToken(suite.buyerToken)

	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	suite.echo = e

	listingCtrl := v2controllers.NewListingController(svc)
	marketCtrl := v2controllers.NewMarketController(svc)
	metadataCtrl := v2controllers.NewMetadataController(svc)
	suite.echo.POST("/v2/nfts", listingCtrl.CreateListing, tokens.Middleware(svc.Config.JWTSecret))
	suite.echo.POST("/v2/nfts/:id/buy", listingCtrl.BuyListing, tokens.Middleware(svc.Config.JWTSecret))
	suite.echo.GET("/v2/nfts", marketCtrl.GetListed)
	suite.echo.GET("/v2/nfts/:id", marketCtrl.GetListing)
	suite.echo.GET("/v2/nfts/:id/metadata", metadataCtrl.GetMetadata)
	suite.echo.GET("/v2/nfts/:id/qr", metadataCtrl.GetMetadataQR)
	suite.echo.GET("/v2/nfts/owned", marketCtrl.GetOwned, tokens.Middleware(svc.Config.JWTSecret))
	suite.echo.GET("/v2/nfts/listed", marketCtrl.GetListedBy, tokens.Middleware(svc.Config.JWTSecret))
}

func (suite *MarketViewsTestSuite) TearDownTest() {
	err := clearMarketplaceTables(suite.service)
	if err != nil {
		fmt.Printf("Tear down test error %v\n", err.Error())
		return
	}
	fmt.Println("Tear down test success")
}

// seeds three listings from two sellers and sells the middle one
func (suite *MarketViewsTestSuite) seedMarket() (first, sold, third *ExpectedListingResponseBody) {
	assert.NoError(suite.T(), fundUser(suite.service, suite.sellerId, 2*testListingFee))
	assert.NoError(suite.T(), fundUser(suite.service, suite.buyerId, testListingFee+testListingPrice))

	first = suite.createListingReq("ipfs://QmView1", testListingPrice, testListingFee, suite.sellerToken)
	sold = suite.createListingReq("ipfs://QmView2", testListingPrice, testListingFee, suite.sellerToken)
	third = suite.createListingReq("ipfs://QmView3", 3*testListingPrice, testListingFee, suite.buyerToken)
	suite.buyListingReq(sold.AssetID, testListingPrice, suite.buyerToken)
	return first, sold, third
}

func (suite *MarketViewsTestSuite) TestListedExcludesSoldAndOrdersByAssetId() {
	first, sold, third := suite.seedMarket()

	listed := suite.getListingsReq("/v2/nfts", "")
	assert.Equal(suite.T(), 2, len(listed.Listings))
	assert.Equal(suite.T(), first.AssetID, listed.Listings[0].AssetID)
	assert.Equal(suite.T(), third.AssetID, listed.Listings[1].AssetID)
	assert.Less(suite.T(), listed.Listings[0].AssetID, listed.Listings[1].AssetID)
	for _, l := range listed.Listings {
		assert.False(suite.T(), l.Sold)
		assert.NotEqual(suite.T(), sold.AssetID, l.AssetID)
	}
}

func (suite *MarketViewsTestSuite) TestOwnedReturnsHeldAssets() {
	_, sold, _ := suite.seedMarket()

	owned := suite.getListingsReq("/v2/nfts/owned", suite.buyerToken)
	assert.Equal(suite.T(), 1, len(owned.Listings))
	assert.Equal(suite.T(), sold.AssetID, owned.Listings[0].AssetID)
	assert.True(suite.T(), owned.Listings[0].Sold)

	// the seller holds nothing, all their assets are in custody or sold
	ownedBySeller := suite.getListingsReq("/v2/nfts/owned", suite.sellerToken)
	assert.Equal(suite.T(), 0, len(ownedBySeller.Listings))
}

func (suite *MarketViewsTestSuite) TestListedByReturnsOwnActiveListings() {
	first, _, third := suite.seedMarket()

	mine := suite.getListingsReq("/v2/nfts/listed", suite.sellerToken)
	assert.Equal(suite.T(), 1, len(mine.Listings))
	assert.Equal(suite.T(), first.AssetID, mine.Listings[0].AssetID)

	buyers := suite.getListingsReq("/v2/nfts/listed", suite.buyerToken)
	assert.Equal(suite.T(), 1, len(buyers.Listings))
	assert.Equal(suite.T(), third.AssetID, buyers.Listings[0].AssetID)
}

func (suite *MarketViewsTestSuite) TestSingleListingLookup() {
	first, _, _ := suite.seedMarket()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v2/nfts/%d", first.AssetID), nil)
	suite.echo.ServeHTTP(rec, req)
	listingResponse := &ExpectedListingResponseBody{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(listingResponse))
	assert.Equal(suite.T(), first.AssetID, listingResponse.AssetID)
	assert.Equal(suite.T(), "ipfs://QmView1", listingResponse.MetadataRef)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v2/nfts/424242", nil)
	suite.echo.ServeHTTP(rec, req)
	checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
}

func (suite *MarketViewsTestSuite) TestMetadataLookup() {
	first, _, _ := suite.seedMarket()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v2/nfts/%d/metadata", first.AssetID), nil)
	suite.echo.ServeHTTP(rec, req)
	metadataResponse := &ExpectedMetadataResponseBody{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(metadataResponse))
	assert.Equal(suite.T(), first.AssetID, metadataResponse.AssetID)
	assert.Equal(suite.T(), "ipfs://QmView1", metadataResponse.MetadataRef)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v2/nfts/%d/qr", first.AssetID), nil)
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotZero(suite.T(), rec.Body.Len())
}

func TestMarketViewsTestSuite(t *testing.T) {
	suite.Run(t, new(MarketViewsTestSuite))
}
