package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/sui-wallet/internal/model"
	"github.com/AlexZinkM/sui-wallet/internal/signer"
	"github.com/AlexZinkM/sui-wallet/internal/store"

	"go.uber.org/zap"
)

// ErrRelayNotConfigured is returned when a wallet cannot sign and no relay client was given
var ErrRelayNotConfigured = errors.New("relay client not configured")

// Relay registers unsigned transactions with the external signing relay
type Relay interface {
	Register(ctx context.Context, txBytes []byte) (*model.RegisterResponse, error)
}

// SignOutcome is the result of SignOrRelay: exactly one field is set
type SignOutcome struct {
	Signed  *signer.SignedTransaction
	Relayed *model.RegisterResponse
}

// SignOrRelay signs locally when the wallet holds a key, otherwise hands the bytes to the relay
// so a human can sign them elsewhere
func (m *Manager) SignOrRelay(ctx context.Context, identifier string, txBytes []byte) (*SignOutcome, error) {
	signed, err := m.SignTransaction(identifier, txBytes)
	if err == nil {
		return &SignOutcome{Signed: signed}, nil
	}
	if !errors.Is(err, store.ErrNoSigningKey) {
		return nil, err
	}

	if m.relay == nil {
		return nil, fmt.Errorf("%w: %w", ErrRelayNotConfigured, err)
	}

	reg, err := m.relay.Register(ctx, txBytes)
	if err != nil {
		return nil, err
	}
	m.logger.Info("transaction handed to signing relay", zap.String("txId", reg.TxID), zap.String("url", reg.URL))
	return &SignOutcome{Relayed: reg}, nil
}
