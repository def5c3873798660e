package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/markethub/markethub.go/common"
	amqp "github.com/rabbitmq/amqp091-go"
)

var bufPool sync.Pool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// StartRabbitMqPublisher pushes every listing event to a topic exchange so
// off-process consumers (indexers, notification services) can follow the
// marketplace without polling the views.
func (svc *MarketService) StartRabbitMqPublisher(ctx context.Context) error {
	// It is recommended that, when possible, publishers and consumers
	// use separate connections so that consumers are isolated from potential
	// flow control measures that may be applied to publishing connections.
	// We therefore start a dedicated publishing connection here instead of
	// storing one on the service object.
	conn, err := amqp.Dial(svc.Config.RabbitMQUri)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		svc.Config.RabbitMQListingExchange,
		// topic exchange so consumers can bind per event type
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts
		// and remain declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchanges accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check whether the exchange was created successfully
		false,
		nil,
	)
	if err != nil {
		return err
	}

	svc.Logger.Infof("Starting rabbitmq publisher")

	createdEvents := make(chan ListingEvent)
	soldEvents := make(chan ListingEvent)
	relistedEvents := make(chan ListingEvent)
	svc.ListingPubSub.Subscribe(common.ListingEventCreated, createdEvents)
	svc.ListingPubSub.Subscribe(common.ListingEventSold, soldEvents)
	svc.ListingPubSub.Subscribe(common.ListingEventRelisted, relistedEvents)

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context canceled")
		case created := <-createdEvents:
			svc.publishListingEvent(ctx, created, ch)
		case sold := <-soldEvents:
			svc.publishListingEvent(ctx, sold, ch)
		case relisted := <-relistedEvents:
			svc.publishListingEvent(ctx, relisted, ch)
		}
	}
}

func (svc *MarketService) publishListingEvent(ctx context.Context, event ListingEvent, ch *amqp.Channel) {
	key := fmt.Sprintf("listing.%s", event.Type)

	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	err = ch.PublishWithContext(ctx,
		svc.Config.RabbitMQListingExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload.Bytes(),
		},
	)
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	svc.Logger.Debugf("Successfully published listing event for asset %d", event.AssetID)
}
