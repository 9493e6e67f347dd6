package model

// Machine-readable error codes returned in ErrorResponse.Code
const (
	CodeWalletNotFound          = "WALLET_NOT_FOUND"
	CodeNoSigningKey            = "NO_SIGNING_KEY"
	CodeNameInUse               = "NAME_IN_USE"
	CodeAddressFormatInvalid    = "ADDRESS_FORMAT_INVALID"
	CodeInvalidCredentialFormat = "INVALID_CREDENTIAL_FORMAT"
	CodeRelayUnavailable        = "RELAY_UNAVAILABLE"
	CodeRelayNotConfigured      = "RELAY_NOT_CONFIGURED"
	CodeTransactionNotFound     = "TRANSACTION_NOT_FOUND"
)

// ErrorResponse is the JSON body of every wallet and relay API error.
// Code is empty for errors without a stable name.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
