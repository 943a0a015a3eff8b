package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// BidAccepted is the event emitted to the external pub/sub after a bid has
// been durably recorded. Downstream notification of the seller is a
// collaborator's responsibility; this core only publishes the fact.
type BidAccepted struct {
	EventID     string    `json:"event_id"`
	ItemID      string    `json:"item_id"`
	BidID       string    `json:"bid_id"`
	BidderID    string    `json:"bidder_id"`
	Amount      float64   `json:"amount"`
	PreviousBid float64   `json:"previous_bid"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher emits domain events to an external transport
type Publisher interface {
	PublishBidAccepted(event BidAccepted) error
}

// NATSPublisher publishes events over a NATS connection
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the NATS server at url
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("resale-negotiation"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// PublishBidAccepted publishes the event on bids.accepted.<item_id>
func (p *NATSPublisher) PublishBidAccepted(event BidAccepted) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal bid event: %w", err)
	}

	subject := fmt.Sprintf("bids.accepted.%s", event.ItemID)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish bid event to %s: %w", subject, err)
	}
	return nil
}

// Close drains and closes the connection
func (p *NATSPublisher) Close() {
	p.conn.Drain()
}

// NoopPublisher drops events; used when no pub/sub transport is configured
type NoopPublisher struct{}

// PublishBidAccepted discards the event
func (NoopPublisher) PublishBidAccepted(BidAccepted) error {
	return nil
}
