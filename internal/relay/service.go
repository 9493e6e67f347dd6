package relay

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/AlexZinkM/sui-wallet/internal/model"

	"github.com/skip2/go-qrcode"
)

// Service registers transactions and builds the links handed to the human signer
type Service struct {
	store     *Store
	publicURL string
}

// NewService creates a relay service. publicURL is the externally reachable base URL of this server.
func NewService(store *Store, publicURL string) *Service {
	return &Service{
		store:     store,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Register stores the bytes and returns the id, the signing page URL and its QR code
func (s *Service) Register(txBytes []byte) (*model.RegisterResponse, error) {
	tx, err := s.store.Put(txBytes)
	if err != nil {
		return nil, err
	}

	url := s.PageURL(tx.ID)
	qr, err := generateQRCode(url)
	if err != nil {
		return nil, err
	}

	return &model.RegisterResponse{
		TxID: tx.ID,
		URL:  url,
		QR:   qr,
	}, nil
}

// Get returns a pending transaction
func (s *Service) Get(id string) (*model.PendingTransaction, error) {
	return s.store.Get(id)
}

// PageURL is the human-facing page of a transaction
func (s *Service) PageURL(id string) string {
	return s.publicURL + "/tx/" + id
}

// QRCode renders the page URL of id as a base64 PNG
func (s *Service) QRCode(id string) (string, error) {
	return generateQRCode(s.PageURL(id))
}

// generateQRCode generates a QR code for the URL and returns it as base64 PNG
func generateQRCode(url string) (string, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	// Encode to base64
	return base64.StdEncoding.EncodeToString(png), nil
}
