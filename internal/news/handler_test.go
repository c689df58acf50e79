package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func testRespondError(w http.ResponseWriter, status int, message string, errorDetail ...string) {
	payload := map[string]interface{}{"message": message}
	if len(errorDetail) > 0 && errorDetail[0] != "" {
		payload["error"] = errorDetail[0]
	}
	testRespondJSON(w, status, payload)
}

func newTestHandler() (*Handler, *Service, *mockRepository) {
	repo := newMockRepository()
	service := NewService(repo, newMockImageStore())
	return NewHandler(service, testRespondJSON, testRespondError), service, repo
}

func multipartBody(t *testing.T, fields map[string]string, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestCreateNews_Success(t *testing.T) {
	handler, _, repo := newTestHandler()

	body, contentType := multipartBody(t,
		map[string]string{"title": "Kajian Subuh", "content": "Isi berita", "author": "Admin"},
		"kajian.jpg", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/news", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Berita berhasil dibuat", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok, "Expected 'data' to be an object in the response")
	assert.Equal(t, "Kajian Subuh", data["title"])
	assert.NotEmpty(t, data["image"])
	assert.Len(t, repo.articles, 1)
}

func TestCreateNews_MissingImage(t *testing.T) {
	handler, _, _ := newTestHandler()

	body, contentType := multipartBody(t,
		map[string]string{"title": "Judul", "content": "Isi", "author": "Admin"},
		"", nil)
	req := httptest.NewRequest(http.MethodPost, "/news", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Gambar wajib diupload untuk berita baru", response["message"])
}

func TestCreateNews_MissingFields(t *testing.T) {
	handler, _, _ := newTestHandler()

	body, contentType := multipartBody(t,
		map[string]string{"title": "Judul"}, "a.jpg", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/news", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.Create(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Title, content, dan author wajib diisi", response["message"])
}

func TestGetNewsByID_NotFound(t *testing.T) {
	handler, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/news/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetByID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Berita tidak ditemukan", response["message"])
}

func TestUpdateNews_Success(t *testing.T) {
	handler, service, _ := newTestHandler()
	article, err := service.Create("Judul", "Isi", "Admin", "a.jpg", []byte("img"))
	require.NoError(t, err)

	body, contentType := multipartBody(t, map[string]string{"title": "Judul Baru"}, "", nil)
	req := httptest.NewRequest(http.MethodPut, "/news/"+article.ID, body)
	req.Header.Set("Content-Type", contentType)
	req.SetPathValue("id", article.ID)
	w := httptest.NewRecorder()

	handler.Update(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Berita berhasil diperbarui", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Judul Baru", data["title"])
}

func TestDeleteNews_Success(t *testing.T) {
	handler, service, repo := newTestHandler()
	article, err := service.Create("Judul", "Isi", "Admin", "a.jpg", []byte("img"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/news/"+article.ID, nil)
	req.SetPathValue("id", article.ID)
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Berita berhasil dihapus", response["message"])
	assert.Empty(t, repo.articles)
}

func TestListNews_Pagination(t *testing.T) {
	handler, service, _ := newTestHandler()
	for i := 0; i < 5; i++ {
		_, err := service.Create(fmt.Sprintf("Berita %d", i), "Isi", "Admin", "a.jpg", []byte("img"))
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/news?page=2&limit=2", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Berhasil menampilkan berita", response["message"])
	assert.Equal(t, float64(2), response["currentPage"])
	assert.Equal(t, float64(3), response["totalPages"])
	assert.Equal(t, float64(5), response["totalItems"])

	data, ok := response["data"].([]interface{})
	assert.True(t, ok, "Expected 'data' to be an array in the response")
	assert.Len(t, data, 2)
}

func TestListNews_PageBeyondData(t *testing.T) {
	handler, service, _ := newTestHandler()
	_, err := service.Create("Berita", "Isi", "Admin", "a.jpg", []byte("img"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/news?page=9&limit=10", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Halaman tidak tersedia", response["message"])
}

func TestListNews_InvalidPageValue(t *testing.T) {
	handler, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/news?page=abc", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
