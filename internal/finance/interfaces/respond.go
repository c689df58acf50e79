package interfaces

import (
	"encoding/json"
	"net/http"
)

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func RespondError(w http.ResponseWriter, status int, message string, errorDetail ...string) {
	payload := map[string]interface{}{
		"message": message,
	}
	if len(errorDetail) > 0 && errorDetail[0] != "" {
		payload["error"] = errorDetail[0]
	}
	RespondJSON(w, status, payload)
}
