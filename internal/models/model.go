package models

import "time"

// User represents a marketplace participant
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Item represents a catalog listing eligible for bidding and negotiation.
// CurrentHighestBid is a derived projection of the bid ledger: zero means
// no bid has been accepted yet.
type Item struct {
	ItemID            string     `json:"item_id"`
	SellerID          string     `json:"seller_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	ListPrice         float64    `json:"list_price"`
	BiddingEnabled    bool       `json:"bidding_enabled"`
	BiddingDeadline   *time.Time `json:"bidding_deadline,omitempty"`
	CurrentHighestBid float64    `json:"current_highest_bid"`
}

// Bid represents an accepted monetary offer against an item.
// Bids are immutable once recorded.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    string    `json:"item_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadStatus is the lifecycle state of a negotiation thread
type ThreadStatus string

const (
	ThreadActive ThreadStatus = "active"
	ThreadClosed ThreadStatus = "closed"
)

// Thread is the single conversation between one buyer and one seller
// about one item. At most one thread exists per (item, buyer) pair.
type Thread struct {
	ThreadID      string       `json:"thread_id"`
	ItemID        string       `json:"item_id"`
	BuyerID       string       `json:"buyer_id"`
	SellerID      string       `json:"seller_id"`
	Status        ThreadStatus `json:"status"`
	Messages      []Message    `json:"messages"`
	LastMessageAt time.Time    `json:"last_message_at"`
	CreatedAt     time.Time    `json:"created_at"`
}

// IsParticipant reports whether userID is the thread's buyer or seller
func (t *Thread) IsParticipant(userID string) bool {
	return userID == t.BuyerID || userID == t.SellerID
}

// Message is one append-only utterance within a thread. Messages are
// ordered by insertion at the storage layer, never by client timestamps.
type Message struct {
	MessageID string    `json:"message_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
