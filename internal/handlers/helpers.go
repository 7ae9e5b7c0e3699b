package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stayback/internal/validators"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeValidationErrors(w http.ResponseWriter, violations []validators.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": violations})
}

func getParamInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.URL.Query().Get(":" + name))
}

// viewerID returns the authenticated user's id, or 0 for anonymous
// requests that passed through the optional-identity middleware.
func viewerID(r *http.Request) int {
	id, _ := r.Context().Value("user_id").(int)
	return id
}
