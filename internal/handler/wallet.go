package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/sui-wallet/internal/keys"
	"github.com/AlexZinkM/sui-wallet/internal/model"
	"github.com/AlexZinkM/sui-wallet/internal/store"
	"github.com/AlexZinkM/sui-wallet/wallet"

	"github.com/gorilla/mux"
)

// WalletHandler exposes the wallet manager over HTTP.
// Every manager call is serialized by mu.
type WalletHandler struct {
	mu      sync.Mutex
	manager *wallet.Manager
	timeout time.Duration
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(manager *wallet.Manager, timeout time.Duration) *WalletHandler {
	return &WalletHandler{
		manager: manager,
		timeout: timeout,
	}
}

// List handles GET /wallets
// @Summary      List wallets
// @Description  Lists all wallets, or those whose name or address contains q
// @Tags         wallets
// @Produce      json
// @Param        q    query     string  false  "Substring filter"
// @Success      200  {object}  model.WalletListResponse
// @Router       /wallets [get]
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var records []*store.Record
	if q := r.URL.Query().Get("q"); q != "" {
		records = h.manager.SearchWallets(q, store.SearchOptions{})
	} else {
		records = h.manager.ListWallets()
	}

	resp := model.WalletListResponse{Wallets: make([]model.WalletResponse, 0, len(records))}
	for _, rec := range records {
		resp.Wallets = append(resp.Wallets, h.toResponse(rec))
	}
	if def := h.manager.DefaultWallet(); def != nil {
		resp.Default = def.Address
	}

	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /wallets
// @Summary      Import wallet
// @Description  Imports a wallet by address with an optional private key or mnemonic
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddWalletRequest  true  "Wallet data"
// @Success      201      {object}  model.WalletResponse
// @Router       /wallets [post]
func (h *WalletHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddWalletRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	creds := &keys.Credentials{Mnemonic: req.Mnemonic, PrivateKey: req.PrivateKey}
	rec, err := h.manager.AddWallet(req.Address, req.Name, creds)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toResponse(rec))
}

// Remove handles DELETE /wallets/{id}
// @Summary      Remove wallet
// @Tags         wallets
// @Param        id   path  string  true  "Address or name"
// @Success      204
// @Router       /wallets/{id} [delete]
func (h *WalletHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.manager.RemoveWallet(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", store.ErrWalletNotFound, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Generate handles POST /wallets/generate
// @Summary      Generate new wallet
// @Description  Generates a new mnemonic wallet. The mnemonic is returned only once.
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  false  "Wallet name"
// @Success      201      {object}  model.GenerateResponse
// @Router       /wallets/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.ContentLength != 0 {
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	rec, mnemonic, err := h.manager.GenerateWallet(req.Name)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, model.GenerateResponse{
		Wallet:   h.toResponse(rec),
		Mnemonic: mnemonic,
	})
}

// SetDefault handles PUT /wallets/default
// @Summary      Set default wallet
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.SetDefaultRequest  true  "Address or name"
// @Success      200      {object}  model.WalletResponse
// @Router       /wallets/default [put]
func (h *WalletHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	var req model.SetDefaultRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.manager.SetDefaultWallet(req.ID) {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", store.ErrWalletNotFound, req.ID))
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(h.manager.DefaultWallet()))
}

// Balance handles GET /wallets/{id}/balance
// @Summary      Get wallet balance
// @Tags         wallets
// @Produce      json
// @Param        id        path      string  true   "Address or name"
// @Param        coinType  query     string  false  "Coin type, SUI by default"
// @Success      200       {object}  model.BalanceResponse
// @Router       /wallets/{id}/balance [get]
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	resp, err := h.manager.GetBalance(ctx, mux.Vars(r)["id"], r.URL.Query().Get("coinType"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Sign handles POST /wallets/sign
// @Summary      Sign transaction
// @Description  Signs with the local key, or registers the transaction with the signing relay when the wallet has none
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignRequest  true  "Wallet and base64 transaction bytes"
// @Success      200      {object}  model.SignResponse
// @Success      202      {object}  model.SignResponse
// @Router       /wallets/sign [post]
func (h *WalletHandler) Sign(w http.ResponseWriter, r *http.Request) {
	req, txBytes, err := decodeSignRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	outcome, err := h.manager.SignOrRelay(ctx, req.Wallet, txBytes)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if outcome.Relayed != nil {
		writeJSON(w, http.StatusAccepted, model.SignResponse{
			TxID: outcome.Relayed.TxID,
			URL:  outcome.Relayed.URL,
			QR:   outcome.Relayed.QR,
		})
		return
	}
	writeJSON(w, http.StatusOK, model.SignResponse{
		Signature: outcome.Signed.Signature,
		Bytes:     outcome.Signed.Bytes,
	})
}

// Execute handles POST /wallets/execute
// @Summary      Sign and submit transaction
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignRequest  true  "Wallet and base64 transaction bytes"
// @Success      200      {object}  model.TransactionBlockResponse
// @Router       /wallets/execute [post]
func (h *WalletHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, txBytes, err := decodeSignRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	resp, err := h.manager.SignAndSubmit(ctx, req.Wallet, txBytes)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *WalletHandler) toResponse(rec *store.Record) model.WalletResponse {
	resp := model.WalletResponse{
		Address:   rec.Address,
		Name:      rec.Name,
		CanSign:   rec.CanSign(),
		IsDefault: h.manager.IsDefault(rec),
	}
	if rec.Keypair != nil {
		resp.Scheme = rec.Keypair.Scheme().String()
	}
	return resp
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func decodeSignRequest(w http.ResponseWriter, r *http.Request) (*model.SignRequest, []byte, error) {
	var req model.SignRequest
	if err := decodeBody(w, r, &req); err != nil {
		return nil, nil, err
	}

	txBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.TxBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("txBytes must be base64: %w", err)
	}
	if len(txBytes) == 0 {
		return nil, nil, errors.New("txBytes is required")
	}
	return &req, txBytes, nil
}
