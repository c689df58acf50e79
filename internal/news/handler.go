package news

import (
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
)

const maxUploadSize = 10 << 20

type ServiceInterface interface {
	Create(title, content, author, imageName string, imageData []byte) (*News, error)
	GetByID(id string) (*News, error)
	Update(id, title, content, author, imageName string, imageData []byte) (*News, error)
	Delete(id string) error
	List(titleFilter string, page, limit int) ([]News, int, error)
}

type Handler struct {
	service      ServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string)
}

func NewHandler(
	service ServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string),
) *Handler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &Handler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// readImage extracts the optional "image" form file. A missing file is not an
// error here; the service decides whether an image is required.
func readImage(r *http.Request) (string, []byte, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil, nil
		}
		return "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	imageName, imageData, err := readImage(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.service.Create(
		r.FormValue("title"), r.FormValue("content"), r.FormValue("author"),
		imageName, imageData,
	)
	if err != nil {
		h.handleServiceError(w, err, "create news")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Berita berhasil dibuat",
		"data":    article,
	})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	article, err := h.service.GetByID(r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, err, "get news")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Berhasil menampilkan berita",
		"data":    article,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	imageName, imageData, err := readImage(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.service.Update(
		r.PathValue("id"),
		r.FormValue("title"), r.FormValue("content"), r.FormValue("author"),
		imageName, imageData,
	)
	if err != nil {
		h.handleServiceError(w, err, "update news")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Berita berhasil diperbarui",
		"data":    article,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.PathValue("id")); err != nil {
		h.handleServiceError(w, err, "delete news")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Berita berhasil dihapus",
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 10
	pageParam := r.URL.Query().Get("page")
	if pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil || parsed < 1 {
			h.respondError(w, http.StatusBadRequest, "Invalid page value")
			return
		}
		page = parsed
	}
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			h.respondError(w, http.StatusBadRequest, "Invalid limit value")
			return
		}
		limit = parsed
	}

	articles, total, err := h.service.List(r.URL.Query().Get("title"), page, limit)
	if err != nil {
		h.handleServiceError(w, err, "list news")
		return
	}

	// An explicitly requested page beyond the data is a miss, not an empty page.
	if pageParam != "" && (page-1)*limit >= total {
		h.respondError(w, http.StatusNotFound, "Halaman tidak tersedia")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Berhasil menampilkan berita",
		"currentPage": page,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"totalItems":  total,
		"data":        articles,
	})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, ErrFieldsRequired), errors.Is(err, ErrImageRequired):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("Error during %s: %v", operation, err)
		h.respondError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
