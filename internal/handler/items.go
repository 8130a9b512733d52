package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FichasBot_Go/internal/catalog"
	"github.com/osse101/FichasBot_Go/internal/domain"
)

// HandleListItems lists the catalog, optionally filtered by ?category=
func HandleListItems(cat catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := GetOptionalQueryParam(r, "category", "")
		if category == "" {
			respondJSON(w, http.StatusOK, cat.All())
			return
		}

		items, err := cat.GetItemsByCategory(domain.ItemCategory(category))
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one catalog entry by the {id} path segment
func HandleGetItem(cat catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := cat.GetItemByID(chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}
