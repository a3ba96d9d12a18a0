package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/robobooks/robobooks-api/internal/application/auth"
	"github.com/robobooks/robobooks-api/internal/application/billing"
	"github.com/robobooks/robobooks-api/internal/application/usecase"
	"github.com/robobooks/robobooks-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	OrgUC      *usecase.OrganizationUseCase
	Modules    *usecase.ModuleService
	CustomerUC *billing.CustomerUseCase
	DocumentUC *billing.DocumentUseCase
	StatusUC   *billing.StatusUseCase
	PDFUC      *billing.PDFUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Organizations (public for bootstrap; registration needs an org to exist)
	orgs := api.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.OrgUC)
	orgs.Get("/", orgHandler.List)
	orgs.Post("/", orgHandler.Create)
	orgs.Get("/:id", orgHandler.GetByID)

	// Protected routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protected)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAccountant), customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleAccountant), customerHandler.Update)

	// Billing documents (protected, billing module required)
	documents := protected.Group("/documents", RequireModule(entity.ModuleBilling, deps.Modules))
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.StatusUC, deps.PDFUC)
	documents.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAccountant), documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Patch("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleAccountant), documentHandler.ChangeStatus)
	documents.Get("/:id/pdf", documentHandler.DownloadPDF)
}
