package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/service"
	"github.com/mhenke/logbuch/internal/store"
	"github.com/mhenke/logbuch/internal/utils"
	"github.com/mhenke/logbuch/models"
)

func (h *Handler) getEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	categoryRef := r.URL.Query().Get("category")

	entries, err := h.services.EntryService.GetEntries(ctx, userID, categoryRef)
	if err != nil {
		log.Err(err).Msg("listing entries failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var entry models.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	entry.UserID = userID

	created, err := h.services.EntryService.CreateEntry(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoCategoryRef):
			log.Err(err).Msg("invalid entry data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during entry creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid entry ID")
		http.Error(w, "invalid entry ID", http.StatusBadRequest)
		return
	}

	if err := h.services.EntryService.DeleteEntry(ctx, userID, entryID); err != nil {
		switch {
		case errors.Is(err, store.ErrEntryNotFound):
			log.Err(err).Int64("entryID", entryID).Msg("entry not found")
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during entry deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Ack{Success: true}, http.StatusOK)
}

// reset wipes all entries and categories of the authenticated user. The next
// category listing re-seeds the starter set.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.EntryService.DeleteAllEntries(ctx, userID); err != nil {
		log.Err(err).Msg("deleting entries failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := h.services.CategoryService.DeleteAllCategories(ctx, userID); err != nil {
		log.Err(err).Msg("deleting categories failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("userID", userID).Msg("user data reset")
	utils.WriteJSON(w, models.Ack{Success: true}, http.StatusOK)
}
