package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/markethub/markethub.go/common"
)

// StartWebhookSubscription posts every listing event to the configured
// webhook url. Delivery is retried with exponential backoff, a webhook that
// stays down does not affect the ledger itself.
func (svc *MarketService) StartWebhookSubscription(ctx context.Context, url string) {

	svc.Logger.Infof("Starting webhook subscription with webhook url %s", url)
	createdEvents := make(chan ListingEvent)
	soldEvents := make(chan ListingEvent)
	relistedEvents := make(chan ListingEvent)
	svc.ListingPubSub.Subscribe(common.ListingEventCreated, createdEvents)
	svc.ListingPubSub.Subscribe(common.ListingEventSold, soldEvents)
	svc.ListingPubSub.Subscribe(common.ListingEventRelisted, relistedEvents)
	for {
		select {
		case <-ctx.Done():
			return
		case created := <-createdEvents:
			svc.postToWebhook(ctx, url, created)
		case sold := <-soldEvents:
			svc.postToWebhook(ctx, url, sold)
		case relisted := <-relistedEvents:
			svc.postToWebhook(ctx, url, relisted)
		}
	}
}

func (svc *MarketService) postToWebhook(ctx context.Context, url string, event ListingEvent) {

	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	err = backoff.Retry(func() error {
		resp, err := http.Post(url, "application/json", bytes.NewReader(payload.Bytes()))
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		// retry server-side failures, anything else is on the receiver
		if resp.StatusCode >= http.StatusInternalServerError {
			msg, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("webhook status code was %d, body: %s", resp.StatusCode, msg)
		}
		return nil
	}, policy)
	if err != nil {
		svc.Logger.Errorf("Gave up delivering webhook for asset %d: %v", event.AssetID, err)
	}
}
