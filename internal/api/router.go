package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andriawan/minibank-backend/internal/auth"
	"github.com/andriawan/minibank-backend/internal/config"
	"github.com/andriawan/minibank-backend/internal/middleware"
	"github.com/andriawan/minibank-backend/internal/models"
	"github.com/andriawan/minibank-backend/internal/services"

	"github.com/andriawan/minibank-backend/internal/api/httpx"
)

func NewRouter(cfg config.Config, verifier *auth.AdminVerifier, as *services.AccountService, ts *services.TransactionService, aus *services.AuditService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.AdminIdentity(verifier))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	// ---------- directory (admin only) ----------
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				FullName string `json:"full_name"`
				BankCode string `json:"bank_code"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed body", nil)
				return
			}
			a, err := as.Create(req.FullName, req.BankCode)
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusCreated, a)
		})

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			accts, err := as.List()
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, accts)
		})

		r.Get("/{account_no}", func(w http.ResponseWriter, r *http.Request) {
			a, err := as.Get(chi.URLParam(r, "account_no"))
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, a)
		})

		r.Patch("/{account_no}", func(w http.ResponseWriter, r *http.Request) {
			var upd models.AccountUpdate
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&upd); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed body", nil)
				return
			}
			a, err := as.Update(chi.URLParam(r, "account_no"), upd)
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, a)
		})

		r.Delete("/{account_no}", func(w http.ResponseWriter, r *http.Request) {
			if err := as.Deactivate(chi.URLParam(r, "account_no")); err != nil {
				writeDomainErr(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	// ---------- banking ----------
	r.Route("/banking", func(r chi.Router) {
		r.Post("/deposit", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				AccountNo string `json:"account_no"`
				Amount    int64  `json:"amount"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed body", nil)
				return
			}
			st, err := ts.Deposit(req.AccountNo, req.Amount)
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, st)
		})

		r.Post("/withdraw", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				AccountNo string `json:"account_no"`
				Amount    int64  `json:"amount"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed body", nil)
				return
			}
			st, err := ts.Withdraw(req.AccountNo, req.Amount)
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, st)
		})

		r.Post("/transfer", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				SrcAccountNo string `json:"src_account_no"`
				DstAccountNo string `json:"dst_account_no"`
				Amount       int64  `json:"amount"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed body", nil)
				return
			}
			views, err := ts.Transfer(req.SrcAccountNo, req.DstAccountNo, req.Amount)
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, views)
		})

		// Balance and statement views are for account holders; an admin
		// caller is rejected by the service with a privilege conflict.
		r.Get("/balance/{account_no}", func(w http.ResponseWriter, r *http.Request) {
			b, err := ts.Balance(chi.URLParam(r, "account_no"), middleware.IsAdmin(r.Context()))
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, b)
		})

		r.Get("/statement/{account_no}", func(w http.ResponseWriter, r *http.Request) {
			st, err := ts.Statement(chi.URLParam(r, "account_no"), middleware.IsAdmin(r.Context()))
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, st)
		})
	})

	// ---------- audit (admin only) ----------
	r.With(middleware.RequireAdmin).Get("/audit", func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		logs, err := aus.Recent(limit)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, logs)
	})

	return r
}
