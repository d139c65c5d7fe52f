package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pokerleague/lnpayments/internal/lnode"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/middleware"
	"github.com/pokerleague/lnpayments/internal/service"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Handler struct {
	balanceService    service.BalanceService
	withdrawalService service.WithdrawalService
	poolService       service.PoolService
	node              lnode.ClientInterface
}

func NewHandler(
	balanceService service.BalanceService,
	withdrawalService service.WithdrawalService,
	poolService service.PoolService,
	node lnode.ClientInterface,
) *Handler {
	return &Handler{
		balanceService:    balanceService,
		withdrawalService: withdrawalService,
		poolService:       poolService,
		node:              node,
	}
}

func NewRouter(handler *Handler, secretKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.WithGzip())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	// Wallet-facing, no auth: the unguessable k1 is the only credential,
	// so these routes get an IP rate limit.
	lnurlLimiter := middleware.NewUserRateLimiter(rate.Limit(5), 10)
	r.Route("/api/lnurl", func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(lnurlLimiter))
		r.Get("/withdraw", handler.LNURLWithdraw)
		r.Get("/withdraw/callback", handler.LNURLWithdrawCallback)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Get("/balance", handler.GetBalance)
		r.Get("/balance/audit", handler.GetAuditTrail)
		r.Post("/withdraw", handler.Withdraw)
		r.Get("/withdrawals/{id}", handler.GetWithdrawalStatus)
		r.Post("/{userID}/credit", handler.CreditReward)
	})

	r.Route("/api/pool/{eventID}", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Get("/", handler.GetPool)
		r.Put("/", handler.ConfigurePool)
		r.Post("/enter", handler.EnterPool)
		r.Get("/entries/{entryID}/check-payment", handler.CheckEntryPayment)
		r.Post("/select-winner", handler.SelectWinner)
	})

	r.Get("/api/node/status", handler.NodeStatus)

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Error("failed to encode json response", zap.Error(err))
	}
}
