package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ItemID   string  `json:"item_id" binding:"required"`
	BidderID string  `json:"bidder_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ItemID    string  `json:"item_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type PriceResponse struct {
	ItemID       string  `json:"item_id"`
	CurrentPrice float64 `json:"current_price"`
}
