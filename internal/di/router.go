package di

import (
	"net/http"

	"github.com/gorilla/mux"

	"gomessenger/internal/auth"
	"gomessenger/internal/common"
	"gomessenger/internal/message"
	"gomessenger/internal/user"
)

// NewRouter assembles the request surface. Login and register are public;
// everything else sits behind the bearer-auth middleware.
func NewRouter(issuer *common.TokenIssuer, authHandler *auth.Handler, userHandler *user.Handler, messageHandler *message.Handler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	authn := api.PathPrefix("/authentication").Subrouter()
	authn.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	authn.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)

	users := api.PathPrefix("/users").Subrouter()
	users.Use(common.AuthMiddleware(issuer))
	users.HandleFunc("", userHandler.GetUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id:[0-9]+}", userHandler.GetUser).Methods(http.MethodGet)

	messages := api.PathPrefix("/message").Subrouter()
	messages.Use(common.AuthMiddleware(issuer))
	messages.HandleFunc("/send-message", messageHandler.SendMessage).Methods(http.MethodPost)
	messages.HandleFunc("/{recipientId:[0-9]+}", messageHandler.GetMessagesForChat).Methods(http.MethodGet)
	messages.HandleFunc("/{messageId:[0-9]+}", messageHandler.DeleteMessage).Methods(http.MethodDelete)

	return r
}
