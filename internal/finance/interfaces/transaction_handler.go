package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ulil-albab/MasjidManager/internal/finance/domain"
	financeErrors "github.com/ulil-albab/MasjidManager/internal/finance/errors"
)

type TransactionServiceInterface interface {
	Create(kind string, transaction *domain.Transaction) (int64, error)
	Update(kind, id string, transaction *domain.Transaction) (*domain.Transaction, error)
	Delete(kind, id string) (*domain.Transaction, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errorDetail ...string),
) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.TypeIncome, "Pemasukan berhasil ditambahkan dan saldo diperbarui")
}

func (h *TransactionHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.TypeExpense, "Pengeluaran berhasil ditambahkan dan saldo diperbarui")
}

func (h *TransactionHandler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, domain.TypeIncome, "Pemasukan berhasil diperbarui")
}

func (h *TransactionHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, domain.TypeExpense, "Pengeluaran berhasil diperbarui")
}

func (h *TransactionHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, domain.TypeIncome, "Pemasukan berhasil dihapus dan saldo diperbarui")
}

func (h *TransactionHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, domain.TypeExpense, "Pengeluaran berhasil dihapus dan saldo diperbarui")
}

func (h *TransactionHandler) create(w http.ResponseWriter, r *http.Request, kind, message string) {
	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	currentBalance, err := h.service.Create(kind, &transaction)
	if err != nil {
		h.handleServiceError(w, err, "create "+kind)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":        message,
		"data":           transaction,
		"currentBalance": currentBalance,
	})
}

func (h *TransactionHandler) update(w http.ResponseWriter, r *http.Request, kind, message string) {
	id := r.PathValue("id")
	var transaction domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(kind, id, &transaction)
	if err != nil {
		h.handleServiceError(w, err, "update "+kind)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"data":    updated,
	})
}

func (h *TransactionHandler) delete(w http.ResponseWriter, r *http.Request, kind, message string) {
	id := r.PathValue("id")

	deleted, err := h.service.Delete(kind, id)
	if err != nil {
		h.handleServiceError(w, err, "delete "+kind)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     message,
		"deletedData": deleted,
	})
}

func (h *TransactionHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if financeErrors.IsValidationError(err) {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if financeErrors.IsNotFoundError(err) {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	log.Printf("Error during %s: %v", operation, err)
	h.respondError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
}
