package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"stayback/internal/models"
	"stayback/internal/services"
	"stayback/internal/validators"
	"stayback/utils"
)

type UploadHandler struct {
	Files       *utils.FileStore
	UserService *services.UserService
}

// UploadOfferPhotos accepts a multipart form holding exactly the number
// of jpeg photos an offer carries and returns their public URLs.
func (h *UploadHandler) UploadOfferPhotos(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) != models.OfferPhotoCount {
		writeValidationErrors(w, []validators.FieldError{{
			Field:   "photos",
			Message: fmt.Sprintf("exactly %d photos are required", models.OfferPhotoCount),
		}})
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if !isJPEG(fh) {
			writeValidationErrors(w, []validators.FieldError{{
				Field:   "photos",
				Message: "only jpeg photos are allowed",
			}})
			return
		}

		url, err := h.saveUpload(fh, "offers", ".jpg", "image/jpeg")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		urls = append(urls, url)
	}

	writeJSON(w, http.StatusCreated, map[string][]string{"photos": urls})
}

func (h *UploadHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := getParamInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	if userID != viewerID(r) {
		http.Error(w, "You can change only your own avatar", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, fh, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "Avatar file is required", http.StatusBadRequest)
		return
	}
	file.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	var contentType string
	switch ext {
	case ".jpg", ".jpeg":
		ext, contentType = ".jpg", "image/jpeg"
	case ".png":
		contentType = "image/png"
	default:
		writeValidationErrors(w, []validators.FieldError{{
			Field:   "avatar",
			Message: "avatar must be a jpg or png image",
		}})
		return
	}

	url, err := h.saveUpload(fh, "avatars", ext, contentType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.UserService.UpdateAvatar(r.Context(), userID, url); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"avatar_url": url})
}

func (h *UploadHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get(":folder")
	filename := r.URL.Query().Get(":filename")
	if folder == "" || filename == "" {
		http.Error(w, "filename is required", http.StatusBadRequest)
		return
	}
	if filename != filepath.Base(filename) || folder != filepath.Base(folder) {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}

	imagePath := filepath.Join(h.Files.Dir, folder, filename)
	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}

	switch filepath.Ext(imagePath) {
	case ".jpg", ".jpeg":
		w.Header().Set("Content-Type", "image/jpeg")
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
	}

	http.ServeFile(w, r, imagePath)
}

func (h *UploadHandler) saveUpload(fh *multipart.FileHeader, folder, ext, contentType string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	return h.Files.Save(data, folder, filename, contentType)
}

func isJPEG(fh *multipart.FileHeader) bool {
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg":
		return true
	}
	return fh.Header.Get("Content-Type") == "image/jpeg"
}
