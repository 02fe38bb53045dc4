package httptransport

import (
	"net/http"

	"formbuilder/internal/config"
	"formbuilder/internal/httpx"
	"formbuilder/internal/service"
	"formbuilder/internal/storage/providers"

	"github.com/gorilla/mux"
)

func Router(allProviders *providers.Providers, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	authService := service.NewAuthService(allProviders.AuthProvider, cfg.JWT.Secret)
	authHandler := NewAuthHandlers(authService)

	formService := service.NewFormService(
		allProviders.FormProvider,
		allProviders.FieldProvider,
		allProviders.OptionProvider,
	)
	formHandler := NewFormHandlers(formService)
	schemaHandler := NewSchemaHandlers(formService, cfg.API.Enabled)

	api := router.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", authHandler.RegisterAdmin).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	api.HandleFunc("/forms/{slug}/", schemaHandler.GetFormSchema).Methods(http.MethodGet)
	api.HandleFunc("/forms/{slug}", schemaHandler.GetFormSchema).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(httpx.Protected(cfg.JWT.Secret))
	admin.HandleFunc("/forms", formHandler.CreateForm).Methods(http.MethodPost)
	admin.HandleFunc("/forms", formHandler.ListForms).Methods(http.MethodGet)
	admin.HandleFunc("/forms/{id}", formHandler.GetForm).Methods(http.MethodGet)
	admin.HandleFunc("/forms/{id}", formHandler.UpdateForm).Methods(http.MethodPut)
	admin.HandleFunc("/forms/{id}", formHandler.DeleteForm).Methods(http.MethodDelete)
	admin.HandleFunc("/forms/{id}/fields", formHandler.CreateField).Methods(http.MethodPost)
	admin.HandleFunc("/fields/{id}", formHandler.UpdateField).Methods(http.MethodPut)
	admin.HandleFunc("/fields/{id}", formHandler.DeleteField).Methods(http.MethodDelete)
	admin.HandleFunc("/fields/{id}/options", formHandler.CreateOption).Methods(http.MethodPost)
	admin.HandleFunc("/options/{id}", formHandler.UpdateOption).Methods(http.MethodPut)
	admin.HandleFunc("/options/{id}", formHandler.DeleteOption).Methods(http.MethodDelete)

	return router
}
