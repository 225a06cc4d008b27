package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"financing-engine/domain"
	httpLayer "financing-engine/http"
	"financing-engine/repository"
	"financing-engine/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	store := repository.NewMemoryParameterStore()
	seedParameterStore(store)

	quoteRepo := repository.NewQuoteRepositoryMemory()

	var cache repository.CacheRepository = repository.NewMockCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ttl := time.Duration(envInt("CACHE_TTL_MINUTES", 60)) * time.Minute
		cache = repository.NewRedisCache(addr, ttl)
	}

	quoteService := service.NewQuoteService(store, quoteRepo, cache)
	quoteHandler := httpLayer.NewQuoteHandler(quoteService)

	rateLimiter := httpLayer.NewRateLimiter(envInt("RATE_LIMIT_PER_MINUTE", 5), time.Minute)
	defer rateLimiter.Stop()

	// The comparison endpoint quotes every configured plan per call, so
	// it gets a tighter budget.
	compareLimiter := httpLayer.NewRateLimiter(envInt("COMPARE_RATE_LIMIT_PER_MINUTE", 2), time.Minute)
	defer compareLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/quote/plan",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(quoteHandler.PlanQuote),
		),
	)

	mux.Handle(
		"/quote/condition",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(quoteHandler.ConditionQuote),
		),
	)

	mux.Handle(
		"/quote/compare",
		httpLayer.RateLimitMiddleware(
			compareLimiter,
			http.HandlerFunc(quoteHandler.CompareQuotes),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Financing quote API listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

func envInt(name string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(name)); err == nil && v > 0 {
		return v
	}
	return fallback
}

// seedParameterStore loads the operator-configured plans. In production
// these come from the configuration store; the fixed ids keep local
// clients stable across restarts.
func seedParameterStore(store *repository.MemoryParameterStore) {
	electronicsCategory := uuid.MustParse("8a3f2c1e-0d54-4a8b-9c6f-2e7b1a5d3c90")

	store.AddParameterSet(domain.BankParameterSet{
		PlanTerms: domain.PlanTerms{
			ID:                       uuid.MustParse("5b8f0d2a-6c3e-4f71-8a9b-1d2e3f405162"),
			Title:                    "Bank installments, 12 months",
			Guarantee:                domain.GuaranteeCheck,
			TermMonths:               12,
			InitialIncreasePercent:   decimal.NewFromInt(10),
			SecondaryIncreasePercent: decimal.Zero,
			MinDownPayment:           decimal.NewFromInt(500_000),
			ValidityMonths:           14,
			Categories:               []uuid.UUID{electronicsCategory},
		},
		AnnualBankTaxPercent: decimal.NewFromInt(18),
	})

	store.AddParameterSet(domain.CompanyParameterSet{
		PlanTerms: domain.PlanTerms{
			ID:                       uuid.MustParse("e1c4b7a0-9f28-4d36-b5a1-7c8d9e0f1a2b"),
			Title:                    "Company installments, 10 months",
			Guarantee:                domain.GuaranteePromissoryNote,
			TermMonths:               10,
			InitialIncreasePercent:   decimal.NewFromInt(8),
			SecondaryIncreasePercent: decimal.NewFromInt(5),
			MinDownPayment:           decimal.NewFromInt(300_000),
			ValidityMonths:           12,
		},
		MonthlyInterestPercent: decimal.NewFromInt(2),
	})

	store.AddLoanCondition(domain.LoanCondition{
		ID:                       uuid.MustParse("0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0"),
		Title:                    "Automobile staged plan",
		Type:                     domain.ConditionAutomobile,
		Guarantee:                domain.GuaranteePromissoryNote,
		GuarantorRequired:        true,
		TermMonths:               36,
		AnnualInterestPercent:    decimal.NewFromInt(20),
		InitialIncreasePercent:   decimal.NewFromInt(12),
		SecondaryIncreasePercent: decimal.NewFromInt(3),
		DeliveryDays:             90,
		Installments: []domain.PrePaymentInstallment{
			{OrderIndex: 1, Percent: decimal.NewFromInt(20), DayOffset: 0},
			{OrderIndex: 2, Percent: decimal.NewFromInt(15), DayOffset: 30},
			{OrderIndex: 3, Percent: decimal.NewFromInt(15), DayOffset: 60},
		},
	})
}
