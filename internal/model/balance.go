package model

// BalanceResponse represents response for GET /wallets/{id}/balance
type BalanceResponse struct {
	Address  string `json:"address"`
	CoinType string `json:"coinType"`
	Balance  string `json:"balance"`
	Raw      string `json:"raw"`
}

// Balance is the ledger result of suix_getBalance
type Balance struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// ObjectRef identifies one ledger object
type ObjectRef struct {
	ObjectID string `json:"objectId"`
	Version  string `json:"version"`
	Digest   string `json:"digest"`
}

// OwnedObject is one entry of suix_getOwnedObjects
type OwnedObject struct {
	Data *ObjectRef `json:"data,omitempty"`
}

// OwnedObjectsPage is the ledger result of suix_getOwnedObjects
type OwnedObjectsPage struct {
	Data        []OwnedObject `json:"data"`
	NextCursor  *string       `json:"nextCursor"`
	HasNextPage bool          `json:"hasNextPage"`
}
