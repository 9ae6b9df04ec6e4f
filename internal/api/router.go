package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/grupocrm/crm-system/internal/api/handler"
	"github.com/grupocrm/crm-system/internal/api/middleware"
	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

// Dependencies carries the constructed services the router wires into
// handlers. Construction happens in cmd/api so the dispatcher lifecycle
// stays under main's control.
type Dependencies struct {
	Auth           ports.AuthService
	Tokens         ports.TokenService
	Customers      ports.CustomerService
	Contacts       ports.ContactService
	Opportunities  ports.OpportunityService
	Tasks          ports.TaskService
	Dashboard      ports.DashboardService
	Activities     ports.ActivityService
	Mongo          *mongo.Database
	Redis          *redis.Client
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// operator is the role set admitted to the regular CRM namespaces.
var operator = []string{domain.RoleUser, domain.RoleAdmin}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, "Cache-Control"},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("crm"))

	// Authentication filter first, then the route authorization policy.
	// The filter only resolves a principal; the policy decides.
	e.Use(middleware.Auth(deps.Tokens))
	e.Use(middleware.Policy(
		middleware.Public("/auth/**"),
		middleware.Public("/health/**"),
		middleware.Public("/metrics"),
		middleware.Public("/swagger/**"),
		middleware.RequireRoles("/admin/**", domain.RoleAdmin),
		middleware.RequireRoles("/dashboard/**", operator...),
		middleware.RequireRoles("/customers/**", operator...),
		middleware.RequireRoles("/contacts/**", operator...),
		middleware.RequireRoles("/opportunities/**", operator...),
		middleware.RequireRoles("/tasks/**", operator...),
		// Anything else falls through to the implicit rule: any
		// authenticated principal.
	))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- CRM routes ---
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	e.GET("/customers", customerHandler.List)
	e.POST("/customers", customerHandler.Create)
	e.PUT("/customers/:id", customerHandler.Update)
	e.DELETE("/customers/:id", customerHandler.Delete)

	contactHandler := handler.NewContactHandler(deps.Contacts)
	e.GET("/contacts", contactHandler.List)
	e.POST("/contacts", contactHandler.Create)
	e.PUT("/contacts/:id", contactHandler.Update)
	e.DELETE("/contacts/:id", contactHandler.Delete)

	opportunityHandler := handler.NewOpportunityHandler(deps.Opportunities)
	e.GET("/opportunities", opportunityHandler.List)
	e.POST("/opportunities", opportunityHandler.Create)
	e.PUT("/opportunities/:id", opportunityHandler.Update)
	e.DELETE("/opportunities/:id", opportunityHandler.Delete)

	taskHandler := handler.NewTaskHandler(deps.Tasks)
	e.GET("/tasks", taskHandler.List)
	e.POST("/tasks", taskHandler.Create)
	e.PUT("/tasks/:id", taskHandler.Update)
	e.DELETE("/tasks/:id", taskHandler.Delete)

	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	e.GET("/dashboard/summary", dashboardHandler.Summary)

	// --- Admin routes ---
	activityHandler := handler.NewActivityHandler(deps.Activities)
	e.GET("/admin/activities", activityHandler.Recent)

	// --- Observability and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
