package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/sui-wallet/internal/client"
	"github.com/AlexZinkM/sui-wallet/internal/keys"
	"github.com/AlexZinkM/sui-wallet/internal/model"
	"github.com/AlexZinkM/sui-wallet/internal/relay"
	"github.com/AlexZinkM/sui-wallet/internal/store"
	"github.com/AlexZinkM/sui-wallet/wallet"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: errorCode(err)})
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, wallet.ErrLedgerNotConfigured), errors.Is(err, wallet.ErrRelayNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, store.ErrWalletNotFound), errors.Is(err, relay.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNoSigningKey), errors.Is(err, store.ErrNameInUse):
		return http.StatusConflict
	case errors.Is(err, keys.ErrAddressFormatInvalid), errors.Is(err, keys.ErrInvalidCredentialFormat),
		errors.Is(err, relay.ErrEmptyTransaction):
		return http.StatusBadRequest
	case errors.Is(err, client.ErrRelayUnavailable), errors.Is(err, client.ErrExecutionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorCode is a stable machine-readable name for known errors
func errorCode(err error) string {
	switch {
	case errors.Is(err, wallet.ErrRelayNotConfigured):
		return model.CodeRelayNotConfigured
	case errors.Is(err, store.ErrWalletNotFound):
		return model.CodeWalletNotFound
	case errors.Is(err, store.ErrNoSigningKey):
		return model.CodeNoSigningKey
	case errors.Is(err, store.ErrNameInUse):
		return model.CodeNameInUse
	case errors.Is(err, keys.ErrAddressFormatInvalid):
		return model.CodeAddressFormatInvalid
	case errors.Is(err, keys.ErrInvalidCredentialFormat):
		return model.CodeInvalidCredentialFormat
	case errors.Is(err, client.ErrRelayUnavailable):
		return model.CodeRelayUnavailable
	case errors.Is(err, relay.ErrNotFound):
		return model.CodeTransactionNotFound
	default:
		return ""
	}
}
