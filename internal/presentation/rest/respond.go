package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps domain error codes to HTTP statuses. Anything without a
// recognized code is reported as an internal error without leaking detail.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *domainerrors.Error
	if !errors.As(err, &domainErr) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case domainerrors.CodeNotFound:
		status = http.StatusNotFound
	case domainerrors.CodeValidation, domainerrors.CodeBadRequest:
		status = http.StatusBadRequest
	case domainerrors.CodeConflict:
		status = http.StatusConflict
	}

	writeJSON(w, status, map[string]string{"error": domainErr.Error()})
}
