package api

import (
	"net/http"

	_ "github.com/AlexZinkM/sui-wallet/docs"
	"github.com/AlexZinkM/sui-wallet/internal/handler"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(walletHandler *handler.WalletHandler, relayHandler *handler.RelayHandler) http.Handler {
	r := mux.NewRouter()

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Wallet endpoints
	r.HandleFunc("/wallets", walletHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/wallets", walletHandler.Add).Methods(http.MethodPost)
	r.HandleFunc("/wallets/generate", walletHandler.Generate).Methods(http.MethodPost)
	r.HandleFunc("/wallets/default", walletHandler.SetDefault).Methods(http.MethodPut)
	r.HandleFunc("/wallets/sign", walletHandler.Sign).Methods(http.MethodPost)
	r.HandleFunc("/wallets/execute", walletHandler.Execute).Methods(http.MethodPost)
	r.HandleFunc("/wallets/{id}/balance", walletHandler.Balance).Methods(http.MethodGet)
	r.HandleFunc("/wallets/{id}", walletHandler.Remove).Methods(http.MethodDelete)

	// Signing relay endpoints
	r.HandleFunc("/api/tx", relayHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/tx/{txId}", relayHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/tx/{txId}", relayHandler.Page).Methods(http.MethodGet)

	return r
}
