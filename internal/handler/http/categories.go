package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/service"
	"github.com/mhenke/logbuch/internal/utils"
	"github.com/mhenke/logbuch/models"
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	categories, err := h.services.CategoryService.GetCategories(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing categories failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var cat models.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	cat.UserID = userID

	created, err := h.services.CategoryService.CreateCategory(ctx, cat)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationEmptyCategoryName) ||
			errors.Is(err, service.ErrValidationNoFieldsProvided):
			log.Err(err).Msg("invalid category data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during category creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusOK)
}
