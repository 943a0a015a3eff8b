package main

import (
	"fmt"
	"os"
	"time"

	bidding "resale-negotiation/internal/biddingService"
	"resale-negotiation/internal/cache"
	"resale-negotiation/internal/events"
	model "resale-negotiation/internal/models"
	negotiation "resale-negotiation/internal/negotiationService"
	"resale-negotiation/internal/repository"
	"resale-negotiation/internal/server"
	"resale-negotiation/utils"
)

func main() {
	ledgerDB, threadDB, cleanup := setupStorage()
	defer cleanup()

	priceCache := setupPriceCache()
	if priceCache != nil {
		defer priceCache.Close()
	}

	publisher := setupPublisher()

	biddingSvc := bidding.NewBiddingService(ledgerDB, priceCache, publisher)
	negotiationSvc := negotiation.NewNegotiationService(threadDB)

	router := server.SetupRouter(biddingSvc, negotiationSvc)

	port := getPort()
	utils.Info("starting negotiation server", map[string]any{"addr": port})
	if err := router.Run(port); err != nil {
		utils.Fatal("server exited", map[string]any{"error": err.Error()})
	}
}

// setupStorage selects the durable store: Postgres when DATABASE_URL is
// set, the in-memory repository otherwise. The returned cleanup releases
// the storage handle at shutdown.
func setupStorage() (repository.BidLedgerDB, repository.ThreadDB, func()) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		repo, err := repository.NewPostgresRepo(connStr)
		if err != nil {
			utils.Fatal("failed to connect to postgres", map[string]any{"error": err.Error()})
		}
		if err := repo.InitSchema(); err != nil {
			utils.Fatal("failed to initialize schema", map[string]any{"error": err.Error()})
		}
		utils.Info("using postgres storage", nil)
		return repo, repo, func() { repo.Close() }
	}

	repo := repository.NewMemoryRepo()
	prepopulateItems(repo)
	utils.Info("using in-memory storage", nil)
	return repo, repo, func() {}
}

// setupPriceCache connects the Redis price cache when REDIS_ADDR is set
func setupPriceCache() *cache.PriceCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	priceCache, err := cache.New(addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		utils.Fatal("failed to connect to redis", map[string]any{"error": err.Error()})
	}
	utils.Info("price cache enabled", map[string]any{"addr": addr})
	return priceCache
}

// setupPublisher connects the NATS event publisher when NATS_URL is set
func setupPublisher() events.Publisher {
	url := os.Getenv("NATS_URL")
	if url == "" {
		return events.NoopPublisher{}
	}

	pub, err := events.NewNATSPublisher(url)
	if err != nil {
		utils.Fatal("failed to connect to nats", map[string]any{"error": err.Error()})
	}
	utils.Info("bid event publishing enabled", map[string]any{"url": url})
	return pub
}

// prepopulateItems adds sample listings to the in-memory repo
func prepopulateItems(repo *repository.MemoryRepo) {
	deadline := time.Now().UTC().Add(72 * time.Hour)
	items := []model.Item{
		{ItemID: "item1", SellerID: "seller1", Title: "Road bike", Description: "Lightly used road bike", ListPrice: 100, BiddingEnabled: true},
		{ItemID: "item2", SellerID: "seller1", Title: "Record player", Description: "Vintage turntable", ListPrice: 200, BiddingEnabled: true, BiddingDeadline: &deadline},
		{ItemID: "item3", SellerID: "seller2", Title: "Bookshelf", Description: "Oak bookshelf, pickup only", ListPrice: 150, BiddingEnabled: false},
	}

	for _, item := range items {
		repo.AddItem(item)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
