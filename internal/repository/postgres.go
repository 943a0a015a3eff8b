package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	model "resale-negotiation/internal/models"
	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/utils"
)

// PostgresRepo is a durable implementation of BidLedgerDB and ThreadDB.
// Atomicity relies on the storage layer: the highest-bid projection is
// raised with a conditional UPDATE inside the same transaction that inserts
// the bid, and threads carry a unique (item_id, buyer_id) index so
// concurrent first contacts collapse onto one row.
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo opens a connection pool and verifies connectivity
func NewPostgresRepo(connStr string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresRepo{db: db}, nil
}

// Close releases the connection pool
func (r *PostgresRepo) Close() error {
	return r.db.Close()
}

// InitSchema creates the tables and indexes used by the negotiation core
func (r *PostgresRepo) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		item_id VARCHAR(255) PRIMARY KEY,
		seller_id VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		list_price DECIMAL(12, 2) NOT NULL,
		bidding_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		bidding_deadline TIMESTAMPTZ,
		current_highest_bid DECIMAL(12, 2) NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS bids (
		bid_id VARCHAR(255) PRIMARY KEY,
		seq BIGSERIAL,
		item_id VARCHAR(255) NOT NULL REFERENCES items(item_id),
		bidder_id VARCHAR(255) NOT NULL,
		amount DECIMAL(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS threads (
		thread_id VARCHAR(255) PRIMARY KEY,
		item_id VARCHAR(255) NOT NULL REFERENCES items(item_id),
		buyer_id VARCHAR(255) NOT NULL,
		seller_id VARCHAR(255) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'active',
		last_message_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (item_id, buyer_id)
	);

	CREATE TABLE IF NOT EXISTS messages (
		message_id VARCHAR(255) PRIMARY KEY,
		seq BIGSERIAL,
		thread_id VARCHAR(255) NOT NULL REFERENCES threads(thread_id),
		sender_id VARCHAR(255) NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE INDEX IF NOT EXISTS idx_bids_item_id ON bids(item_id);
	CREATE INDEX IF NOT EXISTS idx_bids_bidder_id ON bids(bidder_id);
	CREATE INDEX IF NOT EXISTS idx_threads_buyer_id ON threads(buyer_id);
	CREATE INDEX IF NOT EXISTS idx_threads_seller_id ON threads(seller_id);
	CREATE INDEX IF NOT EXISTS idx_messages_thread_id ON messages(thread_id);
	`

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// AddItem inserts an item if it does not exist yet. Used for seeding.
func (r *PostgresRepo) AddItem(item model.Item) error {
	query := `
		INSERT INTO items (item_id, seller_id, title, description, list_price, bidding_enabled, bidding_deadline, current_highest_bid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (item_id) DO NOTHING
	`
	_, err := r.db.Exec(query, item.ItemID, item.SellerID, item.Title, item.Description,
		item.ListPrice, item.BiddingEnabled, item.BiddingDeadline, item.CurrentHighestBid)
	if err != nil {
		return fmt.Errorf("add item %s: %w", item.ItemID, err)
	}
	return nil
}

// GetItem returns the item with the given id
func (r *PostgresRepo) GetItem(itemID string) (model.Item, error) {
	query := `
		SELECT item_id, seller_id, title, description, list_price, bidding_enabled, bidding_deadline, current_highest_bid
		FROM items WHERE item_id = $1
	`
	var item model.Item
	var deadline sql.NullTime
	err := r.db.QueryRow(query, itemID).Scan(&item.ItemID, &item.SellerID, &item.Title,
		&item.Description, &item.ListPrice, &item.BiddingEnabled, &deadline, &item.CurrentHighestBid)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, negotiationerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if deadline.Valid {
		t := deadline.Time
		item.BiddingDeadline = &t
	}
	return item, nil
}

// ListItems returns all items
func (r *PostgresRepo) ListItems() ([]model.Item, error) {
	query := `
		SELECT item_id, seller_id, title, description, list_price, bidding_enabled, bidding_deadline, current_highest_bid
		FROM items ORDER BY item_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var deadline sql.NullTime
		if err := rows.Scan(&item.ItemID, &item.SellerID, &item.Title, &item.Description,
			&item.ListPrice, &item.BiddingEnabled, &deadline, &item.CurrentHighestBid); err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		if deadline.Valid {
			t := deadline.Time
			item.BiddingDeadline = &t
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// RecordBid inserts the bid and raises the projection in one transaction.
// The conditional UPDATE is the compare-and-swap: it matches zero rows when
// another bid landed since the caller read the item.
func (r *PostgresRepo) RecordBid(bid model.Bid, expectedHighest float64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE items SET current_highest_bid = $1 WHERE item_id = $2 AND current_highest_bid = $3`,
		bid.Amount, bid.ItemID, expectedHighest,
	)
	if err != nil {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}
	if affected == 0 {
		var exists bool
		if err := tx.QueryRow(`SELECT TRUE FROM items WHERE item_id = $1`, bid.ItemID).Scan(&exists); errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("record bid for item %s: %w", bid.ItemID, negotiationerrors.ErrItemNotFound)
		} else if err != nil {
			return fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
		}
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, negotiationerrors.ErrConcurrentUpdate)
	}

	if _, err := tx.Exec(
		`INSERT INTO bids (bid_id, item_id, bidder_id, amount, created_at) VALUES ($1, $2, $3, $4, $5)`,
		bid.BidID, bid.ItemID, bid.BidderID, bid.Amount, bid.CreatedAt,
	); err != nil {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}
	return nil
}

// GetBidsByItem returns all bids for an item, most recent first
func (r *PostgresRepo) GetBidsByItem(itemID string) ([]model.Bid, error) {
	query := `
		SELECT bid_id, item_id, bidder_id, amount, created_at
		FROM bids WHERE item_id = $1 ORDER BY seq DESC
	`
	rows, err := r.db.Query(query, itemID)
	if err != nil {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.ItemID, &b.BidderID, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("get bids for item %s: %w", itemID, err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, negotiationerrors.ErrNoBids)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for an item
func (r *PostgresRepo) GetWinningBid(itemID string) (model.Bid, error) {
	query := `
		SELECT bid_id, item_id, bidder_id, amount, created_at
		FROM bids WHERE item_id = $1 ORDER BY amount DESC, seq ASC LIMIT 1
	`
	var b model.Bid
	err := r.db.QueryRow(query, itemID).Scan(&b.BidID, &b.ItemID, &b.BidderID, &b.Amount, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get winning bid for item %s: %w", itemID, negotiationerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get winning bid for item %s: %w", itemID, err)
	}
	return b, nil
}

// GetItemsByUser returns all items a user has bid on
func (r *PostgresRepo) GetItemsByUser(userID string) ([]model.Item, error) {
	query := `
		SELECT DISTINCT i.item_id, i.seller_id, i.title, i.description, i.list_price, i.bidding_enabled, i.bidding_deadline, i.current_highest_bid
		FROM items i JOIN bids b ON b.item_id = i.item_id
		WHERE b.bidder_id = $1 ORDER BY i.item_id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("get items for user %s: %w", userID, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var deadline sql.NullTime
		if err := rows.Scan(&item.ItemID, &item.SellerID, &item.Title, &item.Description,
			&item.ListPrice, &item.BiddingEnabled, &deadline, &item.CurrentHighestBid); err != nil {
			return nil, fmt.Errorf("get items for user %s: %w", userID, err)
		}
		if deadline.Valid {
			t := deadline.Time
			item.BiddingDeadline = &t
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get items for user %s: %w", userID, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("get items for user %s: %w", userID, negotiationerrors.ErrUserNoBids)
	}
	return items, nil
}

// UpsertThread finds or creates the thread for (itemID, buyerID) and appends
// first to it. The unique (item_id, buyer_id) index makes concurrent first
// contacts converge on a single row; the losing insert falls through to the
// append path.
func (r *PostgresRepo) UpsertThread(itemID, buyerID, sellerID string, first model.Message) (model.Thread, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return model.Thread{}, fmt.Errorf("upsert thread for item %s: %w", itemID, err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT TRUE FROM items WHERE item_id = $1`, itemID).Scan(&exists); errors.Is(err, sql.ErrNoRows) {
		return model.Thread{}, fmt.Errorf("upsert thread for item %s: %w", itemID, negotiationerrors.ErrItemNotFound)
	} else if err != nil {
		return model.Thread{}, fmt.Errorf("upsert thread for item %s: %w", itemID, err)
	}

	if _, err := tx.Exec(
		`INSERT INTO threads (thread_id, item_id, buyer_id, seller_id, status, last_message_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 ON CONFLICT (item_id, buyer_id) DO NOTHING`,
		utils.GenerateSortableID(), itemID, buyerID, sellerID, model.ThreadActive, first.CreatedAt,
	); err != nil {
		return model.Thread{}, fmt.Errorf("upsert thread for item %s: %w", itemID, err)
	}

	var threadID string
	var status model.ThreadStatus
	if err := tx.QueryRow(
		`SELECT thread_id, status FROM threads WHERE item_id = $1 AND buyer_id = $2 FOR UPDATE`,
		itemID, buyerID,
	).Scan(&threadID, &status); err != nil {
		return model.Thread{}, fmt.Errorf("upsert thread for item %s: %w", itemID, err)
	}
	if status == model.ThreadClosed {
		return model.Thread{}, fmt.Errorf("upsert thread %s: %w", threadID, negotiationerrors.ErrThreadClosed)
	}

	if err := appendMessageTx(tx, threadID, first); err != nil {
		return model.Thread{}, fmt.Errorf("upsert thread %s: %w", threadID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Thread{}, fmt.Errorf("upsert thread %s: %w", threadID, err)
	}
	return r.GetThread(threadID)
}

// GetThread returns the thread with the given id, messages in append order
func (r *PostgresRepo) GetThread(threadID string) (model.Thread, error) {
	var t model.Thread
	err := r.db.QueryRow(
		`SELECT thread_id, item_id, buyer_id, seller_id, status, last_message_at, created_at
		 FROM threads WHERE thread_id = $1`, threadID,
	).Scan(&t.ThreadID, &t.ItemID, &t.BuyerID, &t.SellerID, &t.Status, &t.LastMessageAt, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Thread{}, fmt.Errorf("get thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	}
	if err != nil {
		return model.Thread{}, fmt.Errorf("get thread %s: %w", threadID, err)
	}

	msgs, err := r.messagesForThread(threadID)
	if err != nil {
		return model.Thread{}, err
	}
	t.Messages = msgs
	return t, nil
}

// AppendMessage appends a message to an active thread. The row lock taken
// by FOR UPDATE serializes the closed check against a concurrent close.
func (r *PostgresRepo) AppendMessage(threadID string, msg model.Message) (model.Thread, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, err)
	}
	defer tx.Rollback()

	var status model.ThreadStatus
	err = tx.QueryRow(`SELECT status FROM threads WHERE thread_id = $1 FOR UPDATE`, threadID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	}
	if err != nil {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, err)
	}
	if status == model.ThreadClosed {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, negotiationerrors.ErrThreadClosed)
	}

	if err := appendMessageTx(tx, threadID, msg); err != nil {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Thread{}, fmt.Errorf("append message to thread %s: %w", threadID, err)
	}
	return r.GetThread(threadID)
}

// MarkMessagesRead marks every message not authored by readerID as read
func (r *PostgresRepo) MarkMessagesRead(threadID, readerID string) error {
	var exists bool
	if err := r.db.QueryRow(`SELECT TRUE FROM threads WHERE thread_id = $1`, threadID).Scan(&exists); errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("mark read on thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	} else if err != nil {
		return fmt.Errorf("mark read on thread %s: %w", threadID, err)
	}

	if _, err := r.db.Exec(
		`UPDATE messages SET read = TRUE WHERE thread_id = $1 AND sender_id <> $2 AND read = FALSE`,
		threadID, readerID,
	); err != nil {
		return fmt.Errorf("mark read on thread %s: %w", threadID, err)
	}
	return nil
}

// CloseThread transitions a thread to closed; a no-op when already closed
func (r *PostgresRepo) CloseThread(threadID string) error {
	res, err := r.db.Exec(`UPDATE threads SET status = $1 WHERE thread_id = $2`, model.ThreadClosed, threadID)
	if err != nil {
		return fmt.Errorf("close thread %s: %w", threadID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("close thread %s: %w", threadID, err)
	}
	if affected == 0 {
		return fmt.Errorf("close thread %s: %w", threadID, negotiationerrors.ErrThreadNotFound)
	}
	return nil
}

// GetThreadsByUser returns all threads where the user is buyer or seller,
// ordered by last-message time descending
func (r *PostgresRepo) GetThreadsByUser(userID string) ([]model.Thread, error) {
	rows, err := r.db.Query(
		`SELECT thread_id, item_id, buyer_id, seller_id, status, last_message_at, created_at
		 FROM threads WHERE buyer_id = $1 OR seller_id = $1
		 ORDER BY last_message_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get threads for user %s: %w", userID, err)
	}
	defer rows.Close()

	var threads []model.Thread
	for rows.Next() {
		var t model.Thread
		if err := rows.Scan(&t.ThreadID, &t.ItemID, &t.BuyerID, &t.SellerID, &t.Status, &t.LastMessageAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("get threads for user %s: %w", userID, err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get threads for user %s: %w", userID, err)
	}
	if len(threads) == 0 {
		return nil, fmt.Errorf("get threads for user %s: %w", userID, negotiationerrors.ErrNoThreads)
	}

	for i := range threads {
		msgs, err := r.messagesForThread(threads[i].ThreadID)
		if err != nil {
			return nil, err
		}
		threads[i].Messages = msgs
	}
	return threads, nil
}

func (r *PostgresRepo) messagesForThread(threadID string) ([]model.Message, error) {
	rows, err := r.db.Query(
		`SELECT message_id, sender_id, body, created_at, read
		 FROM messages WHERE thread_id = $1 ORDER BY seq ASC`, threadID,
	)
	if err != nil {
		return nil, fmt.Errorf("get messages for thread %s: %w", threadID, err)
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.MessageID, &m.SenderID, &m.Body, &m.CreatedAt, &m.Read); err != nil {
			return nil, fmt.Errorf("get messages for thread %s: %w", threadID, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func appendMessageTx(tx *sql.Tx, threadID string, msg model.Message) error {
	if _, err := tx.Exec(
		`INSERT INTO messages (message_id, thread_id, sender_id, body, created_at, read)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.MessageID, threadID, msg.SenderID, msg.Body, msg.CreatedAt, msg.Read,
	); err != nil {
		return err
	}
	_, err := tx.Exec(`UPDATE threads SET last_message_at = $1 WHERE thread_id = $2`, msg.CreatedAt, threadID)
	return err
}
