package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stayback/internal/models"
	"stayback/internal/services"
	"stayback/internal/validators"
)

type CommentHandler struct {
	Service      *services.CommentService
	OfferService *services.OfferService
}

func (h *CommentHandler) GetCommentsByOfferID(w http.ResponseWriter, r *http.Request) {
	offerID, err := getParamInt(r, "offerId")
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	if !h.requireOffer(w, r, offerID) {
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
	}

	comments, err := h.Service.GetCommentsByOfferID(r.Context(), offerID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	offerID, err := getParamInt(r, "offerId")
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	if !h.requireOffer(w, r, offerID) {
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if violations := validators.ValidateCreateComment(req); len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	comment, err := h.Service.CreateComment(r.Context(), offerID, viewerID(r), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) requireOffer(w http.ResponseWriter, r *http.Request, offerID int) bool {
	exists, err := h.OfferService.Exists(r.Context(), offerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}
	if !exists {
		http.Error(w, models.ErrOfferNotFound.Error(), http.StatusNotFound)
		return false
	}
	return true
}
