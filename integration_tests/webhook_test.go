package integration_tests

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/markethub/markethub.go/common"
	"github.com/markethub/markethub.go/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type WebhookTestSuite struct {
	suite.Suite
	service *service.MarketService
}

func (suite *WebhookTestSuite) SetupSuite() {
	svc, err := marketTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
}

func (suite *WebhookTestSuite) TearDownTest() {
	err := clearMarketplaceTables(suite.service)
	if err != nil {
		fmt.Printf("Tear down test error %v\n", err.Error())
		return
	}
	fmt.Println("Tear down test success")
}

func (suite *WebhookTestSuite) TestListingEventsAreDelivered() {
	received := make(chan service.ListingEvent, 10)
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event service.ListingEvent
		assert.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&event))
		received <- event
		w.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go suite.service.StartWebhookSubscription(ctx, testServer.URL)
	// give the subscription a moment to register
	time.Sleep(100 * time.Millisecond)

	_, userTokens, err := createUsers(suite.service, 2)
	assert.NoError(suite.T(), err)
	sellerId := getUserIdFromToken(userTokens[0])
	buyerId := getUserIdFromToken(userTokens[1])

	assert.NoError(suite.T(), fundUser(suite.service, sellerId, testListingFee))
	listing, err := suite.service.CreateListing(context.Background(), sellerId, "ipfs://QmHook1", testListingPrice, testListingFee)
	assert.NoError(suite.T(), err)

	select {
	case event := <-received:
		assert.Equal(suite.T(), common.ListingEventCreated, event.Type)
		assert.Equal(suite.T(), listing.AssetID, event.AssetID)
		assert.Equal(suite.T(), sellerId, event.SellerID)
		assert.Equal(suite.T(), testListingPrice, event.Price)
	case <-time.After(5 * time.Second):
		suite.T().Fatal("timed out waiting for the created event")
	}

	assert.NoError(suite.T(), fundUser(suite.service, buyerId, testListingPrice))
	_, err = suite.service.BuyListing(context.Background(), buyerId, listing.AssetID, testListingPrice)
	assert.NoError(suite.T(), err)

	select {
	case event := <-received:
		assert.Equal(suite.T(), common.ListingEventSold, event.Type)
		assert.Equal(suite.T(), listing.AssetID, event.AssetID)
		assert.Equal(suite.T(), buyerId, event.BuyerID)
	case <-time.After(5 * time.Second):
		suite.T().Fatal("timed out waiting for the sold event")
	}

	assert.NoError(suite.T(), fundUser(suite.service, buyerId, testListingFee))
	_, err = suite.service.ResellListing(context.Background(), buyerId, listing.AssetID, 2*testListingPrice, testListingFee)
	assert.NoError(suite.T(), err)

	select {
	case event := <-received:
		assert.Equal(suite.T(), common.ListingEventRelisted, event.Type)
		assert.Equal(suite.T(), listing.AssetID, event.AssetID)
		assert.Equal(suite.T(), buyerId, event.SellerID)
		assert.Equal(suite.T(), 2*testListingPrice, event.Price)
	case <-time.After(5 * time.Second):
		suite.T().Fatal("timed out waiting for the relisted event")
	}
}

func TestWebhookTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookTestSuite))
}
