package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/db/repositories"
	"vendor_rewards/internal/services"
	"vendor_rewards/internal/wallet"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type StreakReader interface {
	CachedStreak(ctx context.Context, userID string) (int, error)
}

type Handler struct {
	votes            services.VoteService
	distributions    services.DistributionService
	balances         services.BalanceService
	streaks          StreakReader
	vendorRepository repositories.VendorRepository
	logger           *zap.SugaredLogger
}

func NewHandler(
	votes services.VoteService,
	distributions services.DistributionService,
	balances services.BalanceService,
	streaks StreakReader,
	vendorRepository repositories.VendorRepository,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		votes:            votes,
		distributions:    distributions,
		balances:         balances,
		streaks:          streaks,
		vendorRepository: vendorRepository,
		logger:           logger,
	}
}

type submitVoteRequest struct {
	VoterID     string                 `json:"voter_id"`
	VendorID    string                 `json:"vendor_id"`
	Kind        models.VoteKind        `json:"kind"`
	ProofURL    string                 `json:"proof_url,omitempty"`
	ContentHash string                 `json:"content_hash,omitempty"`
	Location    *models.Location       `json:"location,omitempty"`
	Confidence  *float64               `json:"confidence,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type submitVoteResponse struct {
	Success            bool                      `json:"success"`
	VoteID             string                    `json:"vote_id"`
	TokensEarned       int64                     `json:"tokens_earned"`
	NewBalance         int64                     `json:"new_balance"`
	StreakBonus        int64                     `json:"streak_bonus"`
	TerritoryBonus     int64                     `json:"territory_bonus"`
	Streak             int                       `json:"streak"`
	DistributionStatus models.DistributionStatus `json:"distribution_status"`
	Warnings           []string                  `json:"warnings,omitempty"`
}

type connectWalletRequest struct {
	WalletAddress string `json:"wallet_address"`
}

type distributionResponse struct {
	Success bool `json:"success"`
	services.DistributionSummary
}

type rewardsResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
	Streak  int    `json:"streak"`
}

type historyResponse struct {
	Success bool           `json:"success"`
	Votes   []*models.Vote `json:"votes"`
}

type statsResponse struct {
	Success bool `json:"success"`
	*models.VendorStats
}

func (h *Handler) healthcheck(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) submitVote(w http.ResponseWriter, r *http.Request) {
	var request submitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if request.VendorID != "" {
		vendor, err := h.vendorRepository.GetOne(r.Context(), request.VendorID)
		if err != nil {
			h.logger.Errorw("failed to get vendor", "vendor_id", request.VendorID, "error", err)
			respondWithError(w, http.StatusInternalServerError, services.ErrPersistence.Error())
			return
		}
		if vendor == nil {
			respondWithError(w, http.StatusNotFound, services.ErrVendorNotFound.Error())
			return
		}
	}

	result, err := h.votes.Submit(r.Context(), services.SubmitVoteRequest{
		VoterID:     request.VoterID,
		VendorID:    request.VendorID,
		Kind:        request.Kind,
		ProofURL:    request.ProofURL,
		ContentHash: request.ContentHash,
		Location:    request.Location,
		Confidence:  request.Confidence,
		Metadata:    request.Metadata,
	})
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, submitVoteResponse{
		Success:            true,
		VoteID:             result.VoteID,
		TokensEarned:       result.TokensEarned,
		NewBalance:         result.NewBalance,
		StreakBonus:        result.StreakBonus,
		TerritoryBonus:     result.TerritoryBonus,
		Streak:             result.Streak,
		DistributionStatus: result.DistributionStatus,
		Warnings:           result.Warnings,
	})
}

func (h *Handler) voteHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = parsed
	}

	votes, err := h.votes.History(r.Context(), mux.Vars(r)["id"], limit)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, historyResponse{Success: true, Votes: votes})
}

func (h *Handler) vendorStats(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["id"]

	vendor, err := h.vendorRepository.GetOne(r.Context(), vendorID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	if vendor == nil {
		respondWithError(w, http.StatusNotFound, services.ErrVendorNotFound.Error())
		return
	}

	stats, err := h.votes.VendorStats(r.Context(), vendorID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, statsResponse{Success: true, VendorStats: stats})
}

func (h *Handler) rewards(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	balance, err := h.balances.GetBalance(r.Context(), userID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	streak, err := h.streaks.CachedStreak(r.Context(), userID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, rewardsResponse{Success: true, UserID: userID, Balance: balance, Streak: streak})
}

func (h *Handler) connectWallet(w http.ResponseWriter, r *http.Request) {
	var request connectWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	summary, err := h.distributions.ConnectWallet(r.Context(), mux.Vars(r)["id"], request.WalletAddress)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, distributionResponse{Success: true, DistributionSummary: summary})
}

func (h *Handler) retryDistributions(w http.ResponseWriter, r *http.Request) {
	summary, err := h.distributions.RetryFailed(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, distributionResponse{Success: true, DistributionSummary: summary})
}

// respondWithServiceError maps admission rejections onto user-facing
// responses and hides infrastructure errors behind a generic message.
func (h *Handler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidVote), errors.Is(err, wallet.ErrInvalidAddress):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrVendorNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateEvidence), errors.Is(err, services.ErrNoWallet):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrRateLimited), errors.Is(err, services.ErrWeeklyCapExceeded):
		respondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, services.ErrPersistence):
		respondWithError(w, http.StatusInternalServerError, services.ErrPersistence.Error())
	default:
		h.logger.Errorw("request failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
