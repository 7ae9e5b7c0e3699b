package handlers

import (
	"net/http"

	"stayback/internal/models"
	"stayback/internal/services"
)

type FavoriteHandler struct {
	Service      *services.FavoriteService
	OfferService *services.OfferService
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Service.FindFavoriteOffers(r.Context(), viewerID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

func (h *FavoriteHandler) ChangeFavoriteStatus(w http.ResponseWriter, r *http.Request) {
	offerID, err := getParamInt(r, "offerId")
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get(":status")
	if status != "1" && status != "0" {
		http.Error(w, "Status must be 1 or 0", http.StatusBadRequest)
		return
	}

	exists, err := h.OfferService.Exists(r.Context(), offerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, models.ErrOfferNotFound.Error(), http.StatusNotFound)
		return
	}

	offers, err := h.Service.ChangeFavoriteStatus(r.Context(), viewerID(r), offerID, status == "1")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}
