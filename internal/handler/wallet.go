package handler

import (
	"net/http"

	"github.com/osse101/FichasBot_Go/internal/economy"
)

// HandleGetWallet returns a user's currency balance
func HandleGetWallet(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		balance, err := svc.Balance(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get wallet", err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Balance: balance})
	}
}
