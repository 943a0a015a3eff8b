package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resale-negotiation/internal/cache"
	"resale-negotiation/internal/events"
	"resale-negotiation/internal/models"
	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/internal/repository"
	"resale-negotiation/utils"
)

// maxBidAttempts bounds the re-validate-and-retry loop after a lost
// compare-and-swap race
const maxBidAttempts = 3

// BiddingService defines the business logic for the bid ledger
type BiddingService struct {
	repo  repository.BidLedgerDB
	cache *cache.PriceCache
	pub   events.Publisher
	now   func() time.Time
}

// NewBiddingService creates a new BiddingService instance. priceCache may
// be nil; pub may be nil, in which case events are dropped.
func NewBiddingService(repo repository.BidLedgerDB, priceCache *cache.PriceCache, pub events.Publisher) *BiddingService {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &BiddingService{
		repo:  repo,
		cache: priceCache,
		pub:   pub,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// PlaceBid validates and records a bid for an item. The validation read and
// the write are one atomic unit: the repository compares the highest-bid
// projection against the value validated here and rejects stale writes, and
// the service re-validates and retries on that rejection. Two bids checked
// against the same stale projection can therefore never both land.
func (s *BiddingService) PlaceBid(itemID, bidderID string, amount float64) (models.Bid, error) {
	if itemID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing itemID or bidderID", negotiationerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w", negotiationerrors.ErrInvalidAmount)
	}

	var lastErr error
	for attempt := 0; attempt < maxBidAttempts; attempt++ {
		item, err := s.repo.GetItem(itemID)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to validate bid: %w", err)
		}
		if err := validateBidWindow(item, s.now()); err != nil {
			return models.Bid{}, err
		}

		floor := utils.BidFloor(item.ListPrice, item.CurrentHighestBid)
		if amount <= floor {
			minimum := utils.MinAcceptableBid(item.ListPrice, item.CurrentHighestBid)
			return models.Bid{}, fmt.Errorf("service: %w", &negotiationerrors.BidTooLowError{Minimum: minimum})
		}

		bid := models.Bid{
			BidID:     utils.GenerateID(),
			ItemID:    itemID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: s.now(),
		}

		err = s.repo.RecordBid(bid, item.CurrentHighestBid)
		if errors.Is(err, negotiationerrors.ErrConcurrentUpdate) {
			lastErr = err
			continue
		}
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to record bid for item %s by user %s: %w", itemID, bidderID, err)
		}

		s.afterAccepted(bid, item.CurrentHighestBid)
		return bid, nil
	}

	return models.Bid{}, fmt.Errorf("service: gave up after %d attempts: %w", maxBidAttempts, lastErr)
}

// validateBidWindow checks that the item accepts bids at the given instant
func validateBidWindow(item models.Item, now time.Time) error {
	if !item.BiddingEnabled {
		return fmt.Errorf("service: %w - item %s", negotiationerrors.ErrBiddingDisabled, item.ItemID)
	}
	if item.BiddingDeadline != nil && !now.Before(*item.BiddingDeadline) {
		return fmt.Errorf("service: %w - deadline was %s", negotiationerrors.ErrBiddingClosed,
			item.BiddingDeadline.Format(time.RFC3339))
	}
	return nil
}

// afterAccepted runs the best-effort side channels for a recorded bid:
// raising the cached projection and publishing the accepted event. Neither
// can fail the bid, which is already durable.
func (s *BiddingService) afterAccepted(bid models.Bid, previous float64) {
	if s.cache != nil {
		s.cache.RaiseTo(context.Background(), bid.ItemID, bid.Amount)
	}

	event := events.BidAccepted{
		EventID:     utils.GenerateID(),
		ItemID:      bid.ItemID,
		BidID:       bid.BidID,
		BidderID:    bid.BidderID,
		Amount:      bid.Amount,
		PreviousBid: previous,
		OccurredAt:  bid.CreatedAt,
	}
	go func() {
		if err := s.pub.PublishBidAccepted(event); err != nil {
			utils.Warn("failed to publish bid accepted event", map[string]any{
				"item_id": event.ItemID,
				"bid_id":  event.BidID,
				"error":   err.Error(),
			})
		}
	}()
}

// GetBidsForItem returns all bids for a specific item, most recent first
func (s *BiddingService) GetBidsForItem(itemID string) ([]models.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", negotiationerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific item
func (s *BiddingService) GetWinningBid(itemID string) (models.Bid, error) {
	if itemID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty item ID", negotiationerrors.ErrInvalidInput)
	}

	winningBid, err := s.repo.GetWinningBid(itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for item %s: %w", itemID, err)
	}

	return winningBid, nil
}

// GetCurrentPrice returns the amount a displayed "current price" should
// show: the highest accepted bid, or the list price while no bid exists.
// Served from the raise-only cache when possible; price polling is the
// hottest read and the cache never reports a value above the store's.
func (s *BiddingService) GetCurrentPrice(itemID string) (float64, error) {
	if itemID == "" {
		return 0, fmt.Errorf("service: %w - empty item ID", negotiationerrors.ErrInvalidInput)
	}

	if s.cache != nil {
		if cached, ok := s.cache.CurrentHighest(context.Background(), itemID); ok {
			return cached, nil
		}
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get current price for item %s: %w", itemID, err)
	}

	price := utils.BidFloor(item.ListPrice, item.CurrentHighestBid)
	if s.cache != nil {
		s.cache.RaiseTo(context.Background(), itemID, price)
	}
	return price, nil
}

// GetItem returns a single item with its current highest bid
func (s *BiddingService) GetItem(itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", negotiationerrors.ErrInvalidInput)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}

	return item, nil
}

// ListItems returns all items
func (s *BiddingService) ListItems() ([]models.Item, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	return items, nil
}

// GetItemsByUser returns all items a user has placed bids on
func (s *BiddingService) GetItemsByUser(userID string) ([]models.Item, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", negotiationerrors.ErrInvalidInput)
	}

	items, err := s.repo.GetItemsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items for user %s: %w", userID, err)
	}

	return items, nil
}
