package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"stayback/internal/models"
	"stayback/internal/services"
	"stayback/internal/validators"
)

type OfferHandler struct {
	Service *services.OfferService
}

func (h *OfferHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	q := models.OfferQuery{
		City:     r.URL.Query().Get("city"),
		ViewerID: viewerID(r),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		q.Limit = limit
	}
	if ownerStr := r.URL.Query().Get("owner_id"); ownerStr != "" {
		ownerID, err := strconv.Atoi(ownerStr)
		if err != nil {
			http.Error(w, "Invalid owner_id", http.StatusBadRequest)
			return
		}
		q.OwnerID = ownerID
	}
	if q.City != "" && !models.IsValidCity(q.City) {
		http.Error(w, "Unknown city", http.StatusBadRequest)
		return
	}

	offers, err := h.Service.FindOffers(r.Context(), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	offerID, err := getParamInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	offer, err := h.Service.FindOfferByID(r.Context(), offerID, viewerID(r))
	if err != nil {
		if errors.Is(err, models.ErrOfferNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) GetPremiumOffers(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get(":city")
	if !models.IsValidCity(city) {
		http.Error(w, "Unknown city", http.StatusBadRequest)
		return
	}

	offers, err := h.Service.FindPremiumOffers(r.Context(), city, viewerID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if violations := validators.ValidateCreateOffer(req); len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	created, err := h.Service.CreateOffer(r.Context(), req, viewerID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	offerID, err := getParamInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	if !h.requireOwnedOffer(w, r, offerID) {
		return
	}

	var req models.UpdateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if violations := validators.ValidateUpdateOffer(req); len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	offer, err := h.Service.UpdateOffer(r.Context(), offerID, req, viewerID(r))
	if err != nil {
		// The offer passed the gates above; a miss here means it vanished
		// between the update and the re-aggregation.
		if errors.Is(err, models.ErrOfferNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, offer)
}

func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	offerID, err := getParamInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	if !h.requireOwnedOffer(w, r, offerID) {
		return
	}

	// Existence was gated above; a zero-row delete means the offer vanished
	// in between, which still ends in no content for the caller.
	if err := h.Service.DeleteOffer(r.Context(), offerID); err != nil && !errors.Is(err, models.ErrOfferNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireOwnedOffer enforces the existence and ownership gates shared by
// update and delete. Existence is checked first so a foreign missing
// offer reads as 404, not 403.
func (h *OfferHandler) requireOwnedOffer(w http.ResponseWriter, r *http.Request, offerID int) bool {
	exists, err := h.Service.Exists(r.Context(), offerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}
	if !exists {
		http.Error(w, models.ErrOfferNotFound.Error(), http.StatusNotFound)
		return false
	}

	owner, err := h.Service.IsOwner(r.Context(), offerID, viewerID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}
	if !owner {
		http.Error(w, "You can edit only your own offers", http.StatusForbidden)
		return false
	}

	return true
}
