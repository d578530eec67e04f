package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/internal/expense/store"
	"github.com/outlay-labs/outlay/pkg/httpx"
	"github.com/outlay-labs/outlay/pkg/jwtx"
	"github.com/outlay-labs/outlay/pkg/slogx"

	_ "github.com/outlay-labs/outlay/api/outlay" // Swagger docs
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	ExpenseService *service.ExpenseService
}

func NewRouter(
	signer jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerExpenses()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Outlay Expense Tracking API
//	@version		0.1.0
//	@description	Personal finance tracking backend: user signup/login with stateless
//	@description	HS256 bearer tokens and per-user expense records with date-window and
//	@description	category filtering.
//
//	@contact.name	Outlay Labs
//	@contact.url	https://github.com/outlay-labs/outlay
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /signup - strict rate limit by IP (public account creation)
	signupHandler := &SignupHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerExpenses() {
	gate := AuthGate(r.AuthService)

	createHandler := &ExpenseCreateHandler{ExpenseService: r.ExpenseService}
	listHandler := &ExpenseListHandler{ExpenseService: r.ExpenseService}
	updateHandler := &ExpenseUpdateHandler{ExpenseService: r.ExpenseService}
	deleteHandler := &ExpenseDeleteHandler{ExpenseService: r.ExpenseService}

	// Mutations get a moderate per-user limit, reads a lenient one
	r.Mux.Handle("POST /v1/expenses",
		httpx.Chain(createHandler, gate, httpx.RateLimitByUser(httpx.ModerateLimit)),
	)
	r.Mux.Handle("GET /v1/expenses",
		httpx.Chain(listHandler, gate, httpx.RateLimitByUser(httpx.LenientLimit)),
	)
	r.Mux.Handle("PUT /v1/expenses/{id}",
		httpx.Chain(updateHandler, gate, httpx.RateLimitByUser(httpx.ModerateLimit)),
	)
	r.Mux.Handle("DELETE /v1/expenses/{id}",
		httpx.Chain(deleteHandler, gate, httpx.RateLimitByUser(httpx.ModerateLimit)),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /{$}",
		httpx.Chain(RootHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
