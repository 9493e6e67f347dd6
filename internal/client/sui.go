package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexZinkM/sui-wallet/internal/common"
	"github.com/AlexZinkM/sui-wallet/internal/model"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

const (
	methodGetBalance              = "suix_getBalance"
	methodGetOwnedObjects         = "suix_getOwnedObjects"
	methodExecuteTransactionBlock = "sui_executeTransactionBlock"

	requestTypeWaitForLocalExecution = "WaitForLocalExecution"
)

// ErrExecutionFailed is returned when the ledger executed a transaction with a failure status
var ErrExecutionFailed = errors.New("transaction execution failed")

// SuiClient is a client for the Sui JSON-RPC API
type SuiClient struct {
	rpcClient jsonrpc.RPCClient
	rpcURL    string
}

// NewSuiClient creates a new ledger client for the given endpoint
func NewSuiClient(rpcURL string, timeout time.Duration) *SuiClient {
	return &SuiClient{
		rpcClient: jsonrpc.NewClientWithOpts(rpcURL, &jsonrpc.RPCClientOpts{
			HTTPClient: &http.Client{Timeout: timeout},
		}),
		rpcURL: rpcURL,
	}
}

// GetBalance gets the total balance of coinType owned by owner. Empty coinType means SUI.
func (c *SuiClient) GetBalance(ctx context.Context, owner, coinType string) (*model.Balance, error) {
	if coinType == "" {
		coinType = common.NativeCoinType
	}

	var balance model.Balance
	if err := c.call(ctx, &balance, methodGetBalance, owner, coinType); err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &balance, nil
}

// GetOwnedObjects returns one page of objects owned by owner
func (c *SuiClient) GetOwnedObjects(ctx context.Context, owner string, cursor *string, limit int) (*model.OwnedObjectsPage, error) {
	query := map[string]interface{}{
		"options": map[string]bool{"showType": true},
	}

	var page model.OwnedObjectsPage
	if err := c.call(ctx, &page, methodGetOwnedObjects, owner, query, cursor, limit); err != nil {
		return nil, fmt.Errorf("failed to get owned objects: %w", err)
	}
	return &page, nil
}

// ExecuteTransactionBlock submits signed transaction bytes and waits for local execution.
// txBytes and signatures are base64 encoded.
func (c *SuiClient) ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*model.TransactionBlockResponse, error) {
	options := map[string]bool{"showEffects": true}

	var resp model.TransactionBlockResponse
	err := c.call(ctx, &resp, methodExecuteTransactionBlock, txBytes, signatures, options, requestTypeWaitForLocalExecution)
	if err != nil {
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}

	if resp.Effects != nil && resp.Effects.Status.Status != "success" {
		return &resp, fmt.Errorf("%w: %s: %s", ErrExecutionFailed, resp.Digest, resp.Effects.Status.Error)
	}
	return &resp, nil
}

// call sends one JSON-RPC request with positional params and decodes the result into out
func (c *SuiClient) call(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	resp, err := c.rpcClient.CallRaw(ctx, &jsonrpc.RPCRequest{
		Method:  method,
		Params:  params,
		ID:      1,
		JSONRPC: "2.0",
	})
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return fmt.Errorf("rpc error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	return resp.GetObject(out)
}
