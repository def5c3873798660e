package service

import (
	"sync"
)

// ListingEvent is what the ledger emits on every create, buy and resell.
type ListingEvent struct {
	Type     string `json:"type"`
	AssetID  int64  `json:"asset_id"`
	SellerID int64  `json:"seller_id,omitempty"`
	BuyerID  int64  `json:"buyer_id,omitempty"`
	Price    int64  `json:"price"`
}

type Pubsub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan ListingEvent
}

func NewPubsub() *Pubsub {
	ps := &Pubsub{}
	ps.subs = make(map[string]map[string]chan ListingEvent)
	return ps
}

func (ps *Pubsub) Subscribe(topic string, ch chan ListingEvent) (subId string, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		ps.subs[topic] = make(map[string]chan ListingEvent)
	}
	subIdBytes, err := randBytesFromStr(16, alphaNumBytes)
	if err != nil {
		return "", err
	}
	subId = string(subIdBytes)
	ps.subs[topic][subId] = ch
	return subId, nil
}

func (ps *Pubsub) Unsubscribe(id string, topic string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		return
	}
	if ps.subs[topic][id] == nil {
		return
	}
	close(ps.subs[topic][id])
	delete(ps.subs[topic], id)
}

func (ps *Pubsub) Publish(topic string, msg ListingEvent) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.subs[topic] == nil {
		return
	}

	for _, ch := range ps.subs[topic] {
		ch <- msg
	}
}
