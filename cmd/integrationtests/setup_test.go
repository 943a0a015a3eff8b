package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	bidding "resale-negotiation/internal/biddingService"
	model "resale-negotiation/internal/models"
	negotiation "resale-negotiation/internal/negotiationService"
	"resale-negotiation/internal/repository"
	"resale-negotiation/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouterWithItems initializes the router against an in-memory
// repository seeded with the given items. No cache and no event publisher:
// the API behaves identically without them.
func SetupTestRouterWithItems(items ...model.Item) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, item := range items {
		repo.AddItem(item)
	}

	biddingService := bidding.NewBiddingService(repo, nil, nil)
	negotiationService := negotiation.NewNegotiationService(repo)
	return server.SetupRouter(biddingService, negotiationService)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the data object from a successful response envelope
func Data(t *testing.T, resp map[string]any) map[string]any {
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp["data"])
	}
	return data
}
