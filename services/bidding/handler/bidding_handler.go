package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "resale-negotiation/internal/models"
	"resale-negotiation/internal/negotiationerrors"
	"resale-negotiation/services/bidding/helpers"
	"resale-negotiation/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(itemID, bidderID string, amount float64) (model.Bid, error)
	GetBidsForItem(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, error)
	GetCurrentPrice(itemID string) (float64, error)
	GetItem(itemID string) (model.Item, error)
	ListItems() ([]model.Item, error)
	GetItemsByUser(userID string) ([]model.Item, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.ItemID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)

		// A too-low rejection carries the minimum acceptable amount so
		// the client can correct and retry
		var tooLow *negotiationerrors.BidTooLowError
		if errors.As(err, &tooLow) {
			utils.JSONErrorWithDetail(c, status, err, message, map[string]any{
				"min_acceptable": tooLow.Minimum,
			})
		} else {
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		}
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"item_id":   req.ItemID,
			"bidder_id": req.BidderID,
			"amount":    req.Amount,
			"error":     err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ItemID:    bid.ItemID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":    bid.BidID,
		"item_id":   bid.ItemID,
		"bidder_id": bid.BidderID,
		"amount":    bid.Amount,
	})
}

// GetBidsByItemHandler handles GET /items/:item_id/bids
func (h *BiddingHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.GetBidsForItem(itemID)
	if err != nil && !errors.Is(err, negotiationerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByItemHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetWinningBidHandler handles GET /items/:item_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bid, err := h.service.GetWinningBid(itemID)
	if err != nil {
		if errors.Is(err, negotiationerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ItemID:    bid.ItemID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "winning bid retrieved successfully")
}

// GetCurrentPriceHandler handles GET /items/:item_id/price
func (h *BiddingHandler) GetCurrentPriceHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	price, err := h.service.GetCurrentPrice(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetCurrentPriceHandler: error retrieving price", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := helpers.PriceResponse{ItemID: itemID, CurrentPrice: price}
	utils.JSONResponse(c, http.StatusOK, resp, "price retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *BiddingHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// ListItemsHandler handles GET /items
func (h *BiddingHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.ListItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListItemsHandler: error listing items", map[string]any{"error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// GetItemsByUserHandler handles GET /users/:user_id/items
func (h *BiddingHandler) GetItemsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	items, err := h.service.GetItemsByUser(userID)
	if err != nil && !errors.Is(err, negotiationerrors.ErrUserNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemsByUserHandler: error retrieving items", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("GetItemsByUserHandler", "items retrieved successfully", map[string]any{
		"user_id":     userID,
		"items_count": len(items),
	})
}
