package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/AlexZinkM/sui-wallet/internal/relay"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var txPage = template.Must(template.New("tx").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Transaction {{.ID}}</title></head>
<body>
<h1>Transaction awaiting signature</h1>
<p>ID: <code>{{.ID}}</code></p>
<p>Registered: {{.CreatedAt}}</p>
<p>Bytes (base64):</p>
<textarea readonly rows="8" cols="80">{{.Bytes}}</textarea>
{{if .QR}}<p><img alt="QR" src="data:image/png;base64,{{.QR}}"></p>{{end}}
</body>
</html>
`))

// RelayHandler serves the signing relay contract
type RelayHandler struct {
	service *relay.Service
	logger  *zap.Logger
}

// NewRelayHandler creates a new RelayHandler
func NewRelayHandler(service *relay.Service, logger *zap.Logger) *RelayHandler {
	return &RelayHandler{
		service: service,
		logger:  logger.Named("relay-handler"),
	}
}

// Register handles POST /api/tx
// @Summary      Register transaction
// @Description  Stores raw transaction bytes for an external signer and returns where to find them
// @Tags         relay
// @Accept       octet-stream
// @Produce      json
// @Success      200  {object}  model.RegisterResponse
// @Router       /api/tx [post]
func (h *RelayHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read body: %w", err))
		return
	}

	resp, err := h.service.Register(body)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	h.logger.Info("transaction registered", zap.String("txId", resp.TxID), zap.Int("size", len(body)))
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/tx/{txId}
// @Summary      Fetch transaction bytes
// @Tags         relay
// @Produce      octet-stream
// @Param        txId  path  string  true  "Transaction id"
// @Success      200
// @Failure      404   {object}  model.ErrorResponse
// @Router       /api/tx/{txId} [get]
func (h *RelayHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.service.Get(mux.Vars(r)["txId"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(tx.Bytes)
}

// Page handles GET /tx/{txId}, the page a human signer opens
func (h *RelayHandler) Page(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["txId"]
	tx, err := h.service.Get(id)
	if errors.Is(err, relay.ErrNotFound) {
		http.Error(w, "transaction not found or expired", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	qr, err := h.service.QRCode(id)
	if err != nil {
		h.logger.Warn("failed to render QR code", zap.String("txId", id), zap.Error(err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = txPage.Execute(w, map[string]interface{}{
		"ID":        tx.ID,
		"CreatedAt": tx.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		"Bytes":     base64.StdEncoding.EncodeToString(tx.Bytes),
		"QR":        qr,
	})
	if err != nil {
		h.logger.Warn("failed to render transaction page", zap.Error(err))
	}
}
