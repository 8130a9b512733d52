package handler

import (
	"net/http"

	"github.com/osse101/FichasBot_Go/internal/inventory"
	"github.com/osse101/FichasBot_Go/internal/logger"
)

type ItemRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID   string `json:"item_id" validate:"required,max=100"`
	Quantity int64  `json:"quantity" validate:"min=1,max=10000"`
}

// QuantityResponse reports an item count after a change
type QuantityResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// HandleGetInventory returns a user's chips and items
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		inv, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, inv)
	}
}

// HandleAddItem grants items to a user (system action)
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		qty, err := svc.AddItem(r.Context(), req.UserID, req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Add item", err)
			return
		}

		log.Info("Item added", "user_id", req.UserID, "item", req.ItemID, "quantity", req.Quantity)
		respondJSON(w, http.StatusOK, QuantityResponse{ItemID: req.ItemID, Quantity: qty})
	}
}

// HandleRemoveItem takes items from a user
func HandleRemoveItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
			return
		}

		qty, err := svc.RemoveItem(r.Context(), req.UserID, req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Remove item", err)
			return
		}

		respondJSON(w, http.StatusOK, QuantityResponse{ItemID: req.ItemID, Quantity: qty})
	}
}

// HasItemResponse answers an ownership check
type HasItemResponse struct {
	ItemID string `json:"item_id"`
	Has    bool   `json:"has"`
}

// HandleHasItem checks ownership; quantity defaults to 1
func HandleHasItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		itemID, ok := GetQueryParam(r, w, "item_id")
		if !ok {
			return
		}
		qty, ok := GetInt64QueryParam(r, w, "quantity", 0)
		if !ok {
			return
		}

		has, err := svc.HasItem(r.Context(), userID, itemID, qty)
		if err != nil {
			respondServiceError(w, r, "Has item", err)
			return
		}

		respondJSON(w, http.StatusOK, HasItemResponse{ItemID: itemID, Has: has})
	}
}

type UseItemRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID string `json:"item_id" validate:"required,max=100"`
}

// HandleUseItem activates or consumes one item
func HandleUseItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		use, err := svc.UseItem(r.Context(), req.UserID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Use item", err)
			return
		}

		respondJSON(w, http.StatusOK, use)
	}
}

// ItemStatusResponse reports cooldown and effect state for one item
type ItemStatusResponse struct {
	ItemID              string `json:"item_id"`
	CooldownRemainingMs int64  `json:"cooldown_remaining_ms"`
	EffectActive        bool   `json:"effect_active"`
}

// HandleItemStatus returns the cooldown and effect window for an item
func HandleItemStatus(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		itemID, ok := GetQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		remaining, err := svc.CooldownRemaining(r.Context(), userID, itemID)
		if err != nil {
			respondServiceError(w, r, "Cooldown remaining", err)
			return
		}
		active, err := svc.IsEffectActive(r.Context(), userID, itemID)
		if err != nil {
			respondServiceError(w, r, "Effect active", err)
			return
		}

		respondJSON(w, http.StatusOK, ItemStatusResponse{
			ItemID:              itemID,
			CooldownRemainingMs: remaining.Milliseconds(),
			EffectActive:        active,
		})
	}
}

// HandleActiveEffects lists a user's running item effects
func HandleActiveEffects(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		effects, err := svc.ActiveEffects(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Active effects", err)
			return
		}

		respondJSON(w, http.StatusOK, effects)
	}
}

// HandleBuyItem buys catalog items with chips
func HandleBuyItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		purchase, err := svc.BuyItem(r.Context(), req.UserID, req.ItemID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Buy item", err)
			return
		}

		respondJSON(w, http.StatusOK, purchase)
	}
}
