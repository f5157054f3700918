package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// The GraphQL endpoint handles its own method dispatch, so it is mounted
// without a method pattern.
func NewRouter(graphqlHandler http.Handler, authController *AuthController, healthController *HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// GraphQL API
	mux.Handle("/graphql", graphqlHandler)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Ops
	mux.HandleFunc("GET /health", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
