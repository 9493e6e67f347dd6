package model

import "time"

// PendingTransaction is an unsigned transaction waiting for an external signer
type PendingTransaction struct {
	ID        string    `json:"id"`
	Bytes     []byte    `json:"bytes"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterResponse represents response for POST /api/tx
type RegisterResponse struct {
	TxID string `json:"txId"`
	URL  string `json:"url"`
	QR   string `json:"qr,omitempty"` // base64 PNG of URL
}

// SignRequest represents request for POST /wallets/sign and /wallets/execute.
// TxBytes is base64 encoded.
type SignRequest struct {
	Wallet  string `json:"wallet,omitempty"`
	TxBytes string `json:"txBytes"`
}

// SignResponse represents response for POST /wallets/sign.
// Either Signature/Bytes (signed locally) or TxID/URL (handed to relay) is set.
type SignResponse struct {
	Signature string `json:"signature,omitempty"`
	Bytes     string `json:"bytes,omitempty"`
	TxID      string `json:"txId,omitempty"`
	URL       string `json:"url,omitempty"`
	QR        string `json:"qr,omitempty"`
}

// TransactionEffects is the subset of execution effects we read
type TransactionEffects struct {
	Status struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	} `json:"status"`
}

// TransactionBlockResponse is the ledger result of sui_executeTransactionBlock
type TransactionBlockResponse struct {
	Digest  string              `json:"digest"`
	Effects *TransactionEffects `json:"effects,omitempty"`
}
