// Package server exposes the payoff engine over a small JSON HTTP API for
// UI collaborators. Handlers only marshal between JSON and engine records;
// all numeric semantics live in pkg/payoff and pkg/strategy.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/debtwise/payoff-engine/internal/cache"
	"github.com/debtwise/payoff-engine/pkg/payoff"
	"github.com/debtwise/payoff-engine/pkg/strategy"
	"github.com/debtwise/payoff-engine/pkg/validation"
)

const (
	rateLimitRequests = 30
	rateLimitWindow   = time.Minute

	comparisonCacheTTL = 5 * time.Minute
)

// Server serves the payoff engine API.
type Server struct {
	logger      *zap.Logger
	projector   *payoff.Projector
	simulator   *strategy.Simulator
	resultCache cache.Cache
	limiter     *RateLimiter
	httpServer  *http.Server
}

// New creates a server listening on addr. A nil resultCache disables
// memoization of policy comparisons.
func New(logger *zap.Logger, resultCache cache.Cache, addr string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		logger:      logger,
		projector:   payoff.NewProjector(logger),
		simulator:   strategy.NewSimulator(logger),
		resultCache: resultCache,
		limiter:     NewRateLimiter(rateLimitRequests, rateLimitWindow),
	}

	mux := http.NewServeMux()
	mux.Handle("/api/project", rateLimitMiddleware(s.limiter, http.HandlerFunc(s.handleProject)))
	mux.Handle("/api/payment-for-term", rateLimitMiddleware(s.limiter, http.HandlerFunc(s.handlePaymentForTerm)))
	mux.Handle("/api/compare", rateLimitMiddleware(s.limiter, http.HandlerFunc(s.handleCompare)))
	mux.Handle("/api/strategy/compare", rateLimitMiddleware(s.limiter, http.HandlerFunc(s.handleStrategyCompare)))

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks serving the API.
func (s *Server) ListenAndServe() error {
	s.logger.Info("serving payoff API",
		zap.String("op", "server.ListenAndServe"),
		zap.String("address", s.httpServer.Addr),
	)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server and the rate limiter janitor.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}

type projectRequest struct {
	Balance        float64 `json:"balance"`
	AnnualRate     float64 `json:"annualRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

type projectionResponse struct {
	StartingBalance float64 `json:"startingBalance"`
	MonthlyPayment  float64 `json:"monthlyPayment"`
	AnnualRate      float64 `json:"annualRate"`
	PayoffDate      *string `json:"payoffDate"`
	TotalInterest   float64 `json:"totalInterest"`
	TotalPayments   float64 `json:"totalPayments"`
	MonthsToPayoff  int     `json:"monthsToPayoff"`
	Converged       bool    `json:"converged"`
}

func toProjectionResponse(projection payoff.Projection) projectionResponse {
	response := projectionResponse{
		StartingBalance: projection.StartingBalance,
		MonthlyPayment:  projection.MonthlyPayment,
		AnnualRate:      projection.AnnualRate,
		TotalInterest:   projection.TotalInterest,
		TotalPayments:   projection.TotalPayments,
		MonthsToPayoff:  projection.MonthsToPayoff,
		Converged:       !projection.NonConvergent(),
	}
	if projection.PayoffDate != nil {
		formatted := projection.PayoffDate.Format(time.RFC3339)
		response.PayoffDate = &formatted
	}
	return response
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	var request projectRequest
	if !s.decode(w, r, &request) {
		return
	}

	projection := s.projector.Project(request.Balance, request.AnnualRate, request.MonthlyPayment)
	s.respond(w, toProjectionResponse(projection))
}

type paymentForTermRequest struct {
	Balance      float64 `json:"balance"`
	AnnualRate   float64 `json:"annualRate"`
	TargetMonths int     `json:"targetMonths"`
}

type paymentForTermResponse struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
}

func (s *Server) handlePaymentForTerm(w http.ResponseWriter, r *http.Request) {
	var request paymentForTermRequest
	if !s.decode(w, r, &request) {
		return
	}

	payment := payoff.PaymentForTerm(request.Balance, request.AnnualRate, request.TargetMonths)
	s.respond(w, paymentForTermResponse{MonthlyPayment: payment})
}

type compareRequest struct {
	Balance            float64 `json:"balance"`
	AnnualRate         float64 `json:"annualRate"`
	CurrentPayment     float64 `json:"currentPayment"`
	AlternativePayment float64 `json:"alternativePayment"`
}

type compareResponse struct {
	MonthsSaved              int     `json:"monthsSaved"`
	InterestSaved            float64 `json:"interestSaved"`
	AdditionalMonthlyPayment float64 `json:"additionalMonthlyPayment"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var request compareRequest
	if !s.decode(w, r, &request) {
		return
	}

	savings := s.projector.Compare(request.Balance, request.AnnualRate,
		request.CurrentPayment, request.AlternativePayment)
	s.respond(w, compareResponse{
		MonthsSaved:              savings.MonthsSaved,
		InterestSaved:            savings.InterestSaved,
		AdditionalMonthlyPayment: savings.AdditionalMonthlyPayment,
	})
}

type strategyCompareRequest struct {
	Accounts      []accountPayload `json:"accounts"`
	MonthlyBudget float64          `json:"monthlyBudget"`
}

type accountPayload struct {
	AccountID      string  `json:"accountId"`
	Balance        float64 `json:"balance"`
	AnnualRate     float64 `json:"annualRate"`
	MinimumPayment float64 `json:"minimumPayment"`
}

type strategyCompareResponse struct {
	Avalanche     strategyResultPayload `json:"avalanche"`
	Snowball      strategyResultPayload `json:"snowball"`
	Recommended   string                `json:"recommended"`
	InterestSaved float64               `json:"interestSaved"`
	MonthsSaved   int                   `json:"monthsSaved"`
	Warnings      []string              `json:"warnings,omitempty"`
}

type strategyResultPayload struct {
	TotalInterest  float64 `json:"totalInterest"`
	MonthsToPayoff int     `json:"monthsToPayoff"`
}

func (s *Server) handleStrategyCompare(w http.ResponseWriter, r *http.Request) {
	var request strategyCompareRequest
	if !s.decode(w, r, &request) {
		return
	}

	cacheKey, cacheable := s.comparisonCacheKey(request)
	if cacheable {
		if cached, ok := s.resultCache.Get(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	accounts := make([]strategy.AccountDebt, len(request.Accounts))
	for i, account := range request.Accounts {
		accounts[i] = strategy.AccountDebt{
			AccountID:      account.AccountID,
			Balance:        account.Balance,
			AnnualRate:     account.AnnualRate,
			MinimumPayment: account.MinimumPayment,
		}
	}

	warnings := validation.ValidateAccounts(accounts)
	warnings = append(warnings, validation.ValidateBudget(accounts, request.MonthlyBudget)...)

	comparison := s.simulator.ComparePolicies(accounts, request.MonthlyBudget)
	response := strategyCompareResponse{
		Avalanche: strategyResultPayload{
			TotalInterest:  comparison.Avalanche.TotalInterest,
			MonthsToPayoff: comparison.Avalanche.MonthsToPayoff,
		},
		Snowball: strategyResultPayload{
			TotalInterest:  comparison.Snowball.TotalInterest,
			MonthsToPayoff: comparison.Snowball.MonthsToPayoff,
		},
		Recommended:   string(comparison.Recommended),
		InterestSaved: comparison.InterestSaved,
		MonthsSaved:   comparison.MonthsSaved,
		Warnings:      warnings,
	}

	body, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("failed to marshal comparison response",
			zap.String("op", "server.handleStrategyCompare"),
			zap.Error(err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		if err := s.resultCache.Set(r.Context(), cacheKey, string(body), comparisonCacheTTL); err != nil {
			s.logger.Warn("failed to cache comparison result",
				zap.String("op", "server.handleStrategyCompare"),
				zap.Error(err),
			)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// comparisonCacheKey derives a deterministic key from the request. The
// request struct marshals with a fixed field order, so identical inputs
// always map to the same key.
func (s *Server) comparisonCacheKey(request strategyCompareRequest) (string, bool) {
	if s.resultCache == nil {
		return "", false
	}
	canonical, err := json.Marshal(request)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("policy-comparison:%s", canonical), true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response",
			zap.String("op", "server.respond"),
			zap.Error(err),
		)
	}
}
