package integrationtests

import (
	"net/http"
	"testing"
	"time"

	model "resale-negotiation/internal/models"
	"resale-negotiation/services/bidding/helpers"

	"github.com/stretchr/testify/require"
)

func bikeListing() model.Item {
	return model.Item{
		ItemID:         "item1",
		SellerID:       "seller1",
		Title:          "city bike",
		Description:    "three speed, some rust",
		ListPrice:      100,
		BiddingEnabled: true,
	}
}

// PlaceBidHandler Tests
func TestPlaceBidAPI(t *testing.T) {
	tests := []struct {
		name       string
		item       model.Item
		request    any
		wantStatus int
	}{
		{
			name: "Valid_Bid",
			item: bikeListing(),
			request: helpers.PlaceBidRequest{
				ItemID:   "item1",
				BidderID: "user1",
				Amount:   120,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Invalid_JSON",
			item:       model.Item{},
			request:    "{item_id: 'missing quotes', amount: 100}", // invalid JSON
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Bid_At_List_Price_Rejected",
			item: bikeListing(),
			request: helpers.PlaceBidRequest{
				ItemID:   "item1",
				BidderID: "user1",
				Amount:   100,
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "Bidding_Disabled",
			item: model.Item{
				ItemID:      "item3",
				SellerID:    "seller2",
				Title:       "bookshelf",
				Description: "pickup only",
				ListPrice:   150,
			},
			request: helpers.PlaceBidRequest{
				ItemID:   "item3",
				BidderID: "user1",
				Amount:   200,
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithItems(tt.item)
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := Data(t, resp)
				require.Equal(t, "item1", data["item_id"])
				require.Equal(t, "user1", data["bidder_id"])
				require.Equal(t, 120.0, data["amount"])
				require.NotEmpty(t, data["bid_id"])

				_, err := time.Parse(time.RFC3339, data["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

func TestPlaceBidAPI_TooLowCarriesMinimum(t *testing.T) {
	router := SetupTestRouterWithItems(bikeListing())

	// First bid raises the floor to 120
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: "item1", BidderID: "user1", Amount: 120})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: "item1", BidderID: "user2", Amount: 110})
	require.Equal(t, http.StatusConflict, w.Code)

	detail := resp["detail"].(map[string]any)
	require.InDelta(t, 120.01, detail["min_acceptable"].(float64), 1e-9)
}

func TestPlaceBidAPI_DeadlinePassed(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	item := bikeListing()
	item.BiddingDeadline = &past

	router := SetupTestRouterWithItems(item)

	// Late and low at once: the closed window wins
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: "item1", BidderID: "user1", Amount: 50})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, resp["message"], "bidding has closed")
}

// GetBidsByItemHandler Tests
func TestGetBidsByItemAPI(t *testing.T) {
	tests := []struct {
		name       string
		items      []model.Item
		seedBids   []helpers.PlaceBidRequest
		itemID     string
		wantCount  int
		wantStatus int
	}{
		{
			name:  "With_Bids",
			items: []model.Item{bikeListing()},
			seedBids: []helpers.PlaceBidRequest{
				{ItemID: "item1", BidderID: "user1", Amount: 120},
				{ItemID: "item1", BidderID: "user2", Amount: 150},
			},
			itemID:     "item1",
			wantCount:  2,
			wantStatus: http.StatusOK,
		},
		{
			name:       "No_Bids",
			items:      []model.Item{bikeListing()},
			itemID:     "item1",
			wantCount:  0,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Item_Not_Found",
			items:      []model.Item{},
			itemID:     "nonexistent",
			wantCount:  0,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithItems(tt.items...)
			for _, bid := range tt.seedBids {
				_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", bid)
				require.Equal(t, http.StatusCreated, w.Code)
			}

			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+tt.itemID+"/bids", nil)
			require.Equal(t, tt.wantStatus, w.Code)

			bids := resp["data"].([]any)
			require.Len(t, bids, tt.wantCount)

			if tt.wantCount > 1 {
				first := bids[0].(map[string]any)
				require.Equal(t, 150.0, first["amount"], "most recent bid first")
			}
		})
	}
}

// GetWinningBidHandler Tests
func TestGetWinningBidAPI(t *testing.T) {
	tests := []struct {
		name       string
		items      []model.Item
		seedBids   []helpers.PlaceBidRequest
		itemID     string
		wantBidder string
		wantAmount float64
		wantStatus int
	}{
		{
			name:  "With_Bids",
			items: []model.Item{bikeListing()},
			seedBids: []helpers.PlaceBidRequest{
				{ItemID: "item1", BidderID: "user1", Amount: 120},
				{ItemID: "item1", BidderID: "user3", Amount: 130},
				{ItemID: "item1", BidderID: "user2", Amount: 150},
			},
			itemID:     "item1",
			wantBidder: "user2",
			wantAmount: 150,
			wantStatus: http.StatusOK,
		},
		{
			name:       "No_Bids",
			items:      []model.Item{bikeListing()},
			itemID:     "item1",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Item_Not_Found",
			items:      []model.Item{},
			itemID:     "nonexistent",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithItems(tt.items...)
			for _, bid := range tt.seedBids {
				_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", bid)
				require.Equal(t, http.StatusCreated, w.Code)
			}

			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+tt.itemID+"/winning", nil)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				data := Data(t, resp)
				require.Equal(t, tt.wantBidder, data["bidder_id"])
				require.Equal(t, tt.wantAmount, data["amount"])
			}
		})
	}
}

// GetCurrentPriceHandler Tests
func TestGetCurrentPriceAPI(t *testing.T) {
	router := SetupTestRouterWithItems(bikeListing())

	// No bids yet: the list price is the displayed price
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items/item1/price", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 100.0, Data(t, resp)["current_price"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: "item1", BidderID: "user1", Amount: 120})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items/item1/price", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 120.0, Data(t, resp)["current_price"])
}

// GetItemsByUserHandler Tests
func TestGetItemsByUserAPI(t *testing.T) {
	second := bikeListing()
	second.ItemID = "item2"
	second.Title = "turntable"
	second.ListPrice = 200

	router := SetupTestRouterWithItems(bikeListing(), second)

	for _, bid := range []helpers.PlaceBidRequest{
		{ItemID: "item1", BidderID: "user1", Amount: 120},
		{ItemID: "item2", BidderID: "user1", Amount: 250},
		{ItemID: "item1", BidderID: "user2", Amount: 130},
	} {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", bid)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/users/user1/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 2)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/user3/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))
}
