package handlers

import (
	"net/http"

	"github.com/DanielPopoola/proofing-gallery/internal/api"
	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest/middleware"
)

// CallbackPath is where Przelewy24 posts transaction notifications.
const CallbackPath = "/api/v1/payments/p24/status"

// Routes builds the HTTP surface. requireAuth guards operations that declare
// bearerAuth. edge wraps every route except the gateway callback, which must
// not be throttled alongside client traffic.
func (h *Handlers) Routes(requireAuth, edge func(http.Handler) http.Handler) (http.Handler, error) {
	strictHandler := api.NewStrictHandlerWithOptions(h, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.requestError,
		ResponseErrorHandlerFunc: h.responseError,
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		Middlewares:      []api.MiddlewareFunc{securedBy(requireAuth)},
		ErrorHandlerFunc: h.requestError,
	})

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := middleware.OpenAPIValidator(doc, h.requestError)
	if err != nil {
		return nil, err
	}
	validated := validate(mux)

	root := http.NewServeMux()
	root.Handle("POST "+CallbackPath, validated)
	root.Handle("/", edge(validated))
	return root, nil
}

// securedBy applies requireAuth only to operations carrying bearerAuth scopes.
func securedBy(requireAuth func(http.Handler) http.Handler) api.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		guarded := requireAuth(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Value(api.BearerAuthScopes).([]string); ok {
				guarded.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handlers) requestError(w http.ResponseWriter, r *http.Request, err error) {
	if r.URL.Path == CallbackPath {
		h.logger.Warn("payment notification rejected",
			"status", http.StatusBadRequest,
			"remote_addr", r.RemoteAddr,
			"error", err)
		rest.WriteJSON(w, http.StatusBadRequest, api.Ack{Status: "ERROR"})
		return
	}
	rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
}

func (h *Handlers) responseError(w http.ResponseWriter, _ *http.Request, err error) {
	rest.WriteError(w, application.NewInternalError(err), h.logger)
}
