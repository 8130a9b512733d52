package handler

import (
	"net/http"

	"github.com/osse101/FichasBot_Go/internal/casino"
)

type FlavorRequest struct {
	Category string   `json:"category" validate:"required,max=50"`
	Amount   int64    `json:"amount" validate:"min=0"`
	Won      bool     `json:"won"`
	Extra    []string `json:"extra" validate:"max=5,dive,max=100"`
}

type FlavorResponse struct {
	Text string `json:"text"`
}

// HandleFlavor returns a result line. The generator never fails.
func HandleFlavor(gen casino.FlavorGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FlavorRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Flavor"); err != nil {
			return
		}

		text := gen.Generate(r.Context(), req.Category, req.Amount, req.Won, req.Extra...)
		respondJSON(w, http.StatusOK, FlavorResponse{Text: text})
	}
}
