package handler

import (
	"net/http"

	"github.com/osse101/FichasBot_Go/internal/casino"
	"github.com/osse101/FichasBot_Go/internal/logger"
)

// CasinoHandler handles casino HTTP requests
type CasinoHandler struct {
	service casino.Service
}

// NewCasinoHandler creates a new casino handler
func NewCasinoHandler(service casino.Service) *CasinoHandler {
	return &CasinoHandler{service: service}
}

// BetRequest opens a bet
type BetRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount int64  `json:"amount" validate:"gt=0,max=1000000000000"`
	Game   string `json:"game" validate:"required,game"`
}

// BetResponse reports whether the bet was accepted
type BetResponse struct {
	Accepted    bool  `json:"accepted"`
	ChipBalance int64 `json:"chip_balance"`
}

// HandlePlaceBet debits a bet. An uncovered bet is a 200 with accepted=false.
func (h *CasinoHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req BetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	balance, ok, err := h.service.PlaceBet(r.Context(), req.UserID, req.Amount, req.Game)
	if err != nil {
		respondServiceError(w, r, "Place bet", err)
		return
	}

	respondJSON(w, http.StatusOK, BetResponse{Accepted: ok, ChipBalance: balance})
}

// ResultRequest settles a bet placed earlier
type ResultRequest struct {
	UserID    string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	BetAmount int64  `json:"bet_amount" validate:"gt=0,max=1000000000000"`
	WinAmount int64  `json:"win_amount" validate:"min=0,max=100000000000000"`
	Game      string `json:"game" validate:"required,game"`
}

// BalanceResponse carries a chip or currency balance
type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// HandleRegisterResult settles a bet
func (h *CasinoHandler) HandleRegisterResult(w http.ResponseWriter, r *http.Request) {
	var req ResultRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register result"); err != nil {
		return
	}

	balance, err := h.service.RegisterResult(r.Context(), req.UserID, req.BetAmount, req.WinAmount, req.Game)
	if err != nil {
		respondServiceError(w, r, "Register result", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{UserID: req.UserID, Balance: balance})
}

// ChipsRequest moves chips to or from the currency ledger
type ChipsRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Chips  int64  `json:"chips" validate:"gt=0,max=1000000000000"`
}

// HandleExchange converts chips into currency
func (h *CasinoHandler) HandleExchange(w http.ResponseWriter, r *http.Request) {
	var req ChipsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Exchange chips"); err != nil {
		return
	}

	result, err := h.service.ExchangeChipsForMoney(r.Context(), req.UserID, req.Chips)
	if err != nil {
		respondServiceError(w, r, "Exchange chips", err)
		return
	}

	logger.FromContext(r.Context()).Info("Exchange handled", "user_id", req.UserID, "success", result.Success)
	respondJSON(w, http.StatusOK, result)
}

// HandleBuyChips converts currency into chips
func (h *CasinoHandler) HandleBuyChips(w http.ResponseWriter, r *http.Request) {
	var req ChipsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy chips"); err != nil {
		return
	}

	result, err := h.service.BuyChips(r.Context(), req.UserID, req.Chips)
	if err != nil {
		respondServiceError(w, r, "Buy chips", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetStats returns a user's casino aggregate
func (h *CasinoHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get casino stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// HandleGetChips returns a user's chip balance
func (h *CasinoHandler) HandleGetChips(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	balance, err := h.service.GetChips(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get chips", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Balance: balance})
}

// SlotsRequest plays one slots round
type SlotsRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Bet    int64  `json:"bet" validate:"gt=0,max=1000000000000"`
}

// HandleSpinSlots plays slots
func (h *CasinoHandler) HandleSpinSlots(w http.ResponseWriter, r *http.Request) {
	var req SlotsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin slots"); err != nil {
		return
	}

	play, err := h.service.PlaySlots(r.Context(), req.UserID, req.Bet)
	if err != nil {
		respondServiceError(w, r, "Spin slots", err)
		return
	}

	respondJSON(w, http.StatusOK, play)
}

// RouletteRequest plays one roulette round on a single selection
type RouletteRequest struct {
	UserID    string             `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Bet       int64              `json:"bet" validate:"gt=0,max=1000000000000"`
	Selection casino.RouletteBet `json:"selection"`
}

// HandleSpinRoulette plays roulette
func (h *CasinoHandler) HandleSpinRoulette(w http.ResponseWriter, r *http.Request) {
	var req RouletteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin roulette"); err != nil {
		return
	}

	play, err := h.service.PlayRoulette(r.Context(), req.UserID, req.Bet, req.Selection)
	if err != nil {
		respondServiceError(w, r, "Spin roulette", err)
		return
	}

	respondJSON(w, http.StatusOK, play)
}

// DiceRequest plays one dice round
type DiceRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Bet    int64  `json:"bet" validate:"gt=0,max=1000000000000"`
	Guess  string `json:"guess" validate:"required,oneof=high low seven"`
}

// HandleRollDice plays dice
func (h *CasinoHandler) HandleRollDice(w http.ResponseWriter, r *http.Request) {
	var req DiceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Roll dice"); err != nil {
		return
	}

	play, err := h.service.PlayDice(r.Context(), req.UserID, req.Bet, req.Guess)
	if err != nil {
		respondServiceError(w, r, "Roll dice", err)
		return
	}

	respondJSON(w, http.StatusOK, play)
}

// BlackjackRequest plays one single-shot blackjack round
type BlackjackRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Bet    int64  `json:"bet" validate:"gt=0,max=1000000000000"`
}

// HandlePlayBlackjack deals and settles a blackjack round
func (h *CasinoHandler) HandlePlayBlackjack(w http.ResponseWriter, r *http.Request) {
	var req BlackjackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Play blackjack"); err != nil {
		return
	}

	play, err := h.service.PlayBlackjack(r.Context(), req.UserID, req.Bet)
	if err != nil {
		respondServiceError(w, r, "Play blackjack", err)
		return
	}

	respondJSON(w, http.StatusOK, play)
}
