package repository

import (
	"fmt"
	"sort"
	"sync"

	model "resale-negotiation/internal/models"
	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/utils"
)

// BidLedgerDB defines the storage contract for the bid ledger: item reads,
// atomic bid recording, and bid history.
type BidLedgerDB interface {
	GetItem(itemID string) (model.Item, error)
	ListItems() ([]model.Item, error)
	// RecordBid appends the bid and updates the item's highest-bid
	// projection as one atomic unit. expectedHighest is the projection
	// value the caller validated against; a mismatch at write time
	// returns ErrConcurrentUpdate and leaves state untouched.
	RecordBid(bid model.Bid, expectedHighest float64) error
	GetBidsByItem(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, error)
	GetItemsByUser(userID string) ([]model.Item, error)
}

// ThreadDB defines the storage contract for negotiation threads
type ThreadDB interface {
	GetItem(itemID string) (model.Item, error)
	// UpsertThread atomically looks up the thread for (itemID, buyerID),
	// creating it when absent, and appends first to it. Concurrent calls
	// with the same key never produce duplicate threads.
	UpsertThread(itemID, buyerID, sellerID string, first model.Message) (model.Thread, error)
	GetThread(threadID string) (model.Thread, error)
	AppendMessage(threadID string, msg model.Message) (model.Thread, error)
	MarkMessagesRead(threadID, readerID string) error
	CloseThread(threadID string) error
	GetThreadsByUser(userID string) ([]model.Thread, error)
}

type threadKey struct {
	itemID  string
	buyerID string
}

// MemoryRepo is a concurrency-safe in-memory implementation of BidLedgerDB
// and ThreadDB
type MemoryRepo struct {
	mu           sync.RWMutex
	items        map[string]model.Item    // key: itemID
	bids         map[string][]model.Bid   // key: itemID, append order
	userItems    map[string][]string      // key: bidderID -> itemIDs bid on
	threads      map[string]*model.Thread // key: threadID
	threadByPair map[threadKey]string     // (itemID, buyerID) -> threadID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:        make(map[string]model.Item),
		bids:         make(map[string][]model.Bid),
		userItems:    make(map[string][]string),
		threads:      make(map[string]*model.Thread),
		threadByPair: make(map[threadKey]string),
	}
}

// AddItem adds an item to the repository. Used for seeding and tests.
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ItemID] = item
}

// GetItem returns the item with the given id
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, negotiationerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all items
func (r *MemoryRepo) ListItems() ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

// RecordBid appends a bid and raises the item's highest-bid projection.
// The compare against expectedHighest and the write happen under one lock,
// so two bids validated against the same stale projection cannot both land.
func (r *MemoryRepo) RecordBid(bid model.Bid, expectedHighest float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[bid.ItemID]
	if !ok {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, negotiationerrors.ErrItemNotFound)
	}
	if item.CurrentHighestBid != expectedHighest {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, negotiationerrors.ErrConcurrentUpdate)
	}

	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], bid)
	item.CurrentHighestBid = bid.Amount
	r.items[bid.ItemID] = item

	for _, id := range r.userItems[bid.BidderID] {
		if id == bid.ItemID {
			return nil
		}
	}
	r.userItems[bid.BidderID] = append(r.userItems[bid.BidderID], bid.ItemID)

	return nil
}

// GetBidsByItem returns all bids for an item, most recent first
func (r *MemoryRepo) GetBidsByItem(itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[itemID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, negotiationerrors.ErrNoBids)
	}

	out := make([]model.Bid, len(bids))
	for i, b := range bids {
		out[len(bids)-1-i] = b
	}
	return out, nil
}

// GetWinningBid returns the highest bid for an item
func (r *MemoryRepo) GetWinningBid(itemID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[itemID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for item %s: %w", itemID, negotiationerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount {
			winning = b
		}
	}
	return winning, nil
}

// GetItemsByUser returns all items a user has bid on
func (r *MemoryRepo) GetItemsByUser(userID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemIDs, ok := r.userItems[userID]
	if !ok || len(itemIDs) == 0 {
		return nil, fmt.Errorf("get items for user %s: %w", userID, negotiationerrors.ErrUserNoBids)
	}

	items := make([]model.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		if item, exists := r.items[id]; exists {
			items = append(items, item)
		}
	}
	return items, nil
}

// UpsertThread finds or creates the thread for (itemID, buyerID) and appends
// first to it, all under one lock. Appending to a closed thread is rejected.
func (r *MemoryRepo) UpsertThread(itemID, buyerID, sellerID string, first model.Message) (model.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return model.Thread{}, fmt.Errorf("upsert thread for item %s: %w", itemID, negotiationerrors.ErrItemNotFound)
	}

	key := threadKey{itemID: itemID, buyerID: buyerID}
	if id, ok := r.threadByPair[key]; ok {
		t := r.threads[id]
		if t.Status == model.ThreadClosed {
			return model.Thread{}, fmt.Errorf("upsert thread %s: %w", id, negotiationerrors.ErrThreadClosed)
		}
		t.Messages = append(t.Messages, first)
		t.LastMessageAt = first.CreatedAt
		return copyThread(t), nil
	}

	t := &model.Thread{
		ThreadID:      utils.GenerateSortableID(),
		ItemID:        itemID,
		BuyerID:       buyerID,
		SellerID:      sellerID,
		Status:        model.ThreadActive,
		Messages:      []model.Message{first},
		LastMessageAt: first.CreatedAt,
		CreatedAt:     first.CreatedAt,
	}
	r.threads[t.ThreadID] = t
	r.threadByPair[key] = t.ThreadID
	return copyThread(t), nil
}

// GetThread returns the thread with the given id
func (r *MemoryRepo) GetThread(threadID string) (model.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.threads[threadID]
	if !ok {
		return model.Thread{}, fmt.Errorf("get thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	}
	return copyThread(t), nil
}

// AppendMessage appends a message to an active thread and refreshes the
// last-message timestamp. The closed check happens under the write lock, so
// a message can never land after a concurrent close.
func (r *MemoryRepo) AppendMessage(threadID string, msg model.Message) (model.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[threadID]
	if !ok {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	}
	if t.Status == model.ThreadClosed {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, negotiationerrors.ErrThreadClosed)
	}

	t.Messages = append(t.Messages, msg)
	t.LastMessageAt = msg.CreatedAt
	return copyThread(t), nil
}

// MarkMessagesRead marks every message not authored by readerID as read.
// Idempotent: read flags only transition false to true.
func (r *MemoryRepo) MarkMessagesRead(threadID, readerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[threadID]
	if !ok {
		return fmt.Errorf("mark read on thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	}

	for i := range t.Messages {
		if t.Messages[i].SenderID != readerID {
			t.Messages[i].Read = true
		}
	}
	return nil
}

// CloseThread transitions a thread to closed. Closing an already-closed
// thread is a no-op.
func (r *MemoryRepo) CloseThread(threadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.threads[threadID]
	if !ok {
		return fmt.Errorf("close thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	}

	t.Status = model.ThreadClosed
	return nil
}

// GetThreadsByUser returns all threads where the user is buyer or seller,
// ordered by last-message time descending
func (r *MemoryRepo) GetThreadsByUser(userID string) ([]model.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var threads []model.Thread
	for _, t := range r.threads {
		if t.IsParticipant(userID) {
			threads = append(threads, copyThread(t))
		}
	}
	if len(threads) == 0 {
		return nil, fmt.Errorf("get threads for user %s: %w", userID, negotiationerrors.ErrNoThreads)
	}

	sort.Slice(threads, func(i, j int) bool {
		return threads[i].LastMessageAt.After(threads[j].LastMessageAt)
	})
	return threads, nil
}

// copyThread returns a deep copy so callers never share the repo's message
// slice with concurrent writers
func copyThread(t *model.Thread) model.Thread {
	out := *t
	out.Messages = append([]model.Message(nil), t.Messages...)
	return out
}
