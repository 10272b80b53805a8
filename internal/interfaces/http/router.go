package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/auth"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/scene"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DesignUC      *usecase.DesignUseCase
	IngestUC      *scene.IngestUseCase
	ItemUC        *usecase.ItemUseCase
	QuoteUC       *usecase.QuoteUseCase
	DashboardUC   *usecase.DashboardUseCase
	SyncUC        *usecase.SyncUseCase
	KioskUC       *usecase.KioskUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	PublicBaseURL string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos, perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Designs: la ingestión de escena y las lecturas son públicas (el
	// visualizador kiosko no envía token); las mutaciones directas requieren
	// Bearer. Las rutas literales van antes de /:id para que Fiber no las
	// capture como parámetro.
	designs := api.Group("/designs")
	designHandler := NewDesignHandler(deps.DesignUC, deps.IngestUC, deps.PublicBaseURL)
	designs.Post("/design-saved", designHandler.SceneSaved)
	designs.Get("/user/:userId", designHandler.ListByUser)
	designs.Get("/", designHandler.List)
	designs.Get("/:id", designHandler.GetByID)
	designs.Post("/", AuthMiddleware(deps.JWTSecret), designHandler.Create)
	designs.Put("/:id", AuthMiddleware(deps.JWTSecret), designHandler.Update)
	designs.Delete("/:id", AuthMiddleware(deps.JWTSecret), designHandler.Delete)

	// Catalog (lecturas públicas, mutaciones protegidas staff/admin)
	items := api.Group("/catalog/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id/like", itemHandler.ToggleLike)
	requireStaff := RequireRole("staff", "admin")
	items.Post("/", AuthMiddleware(deps.JWTSecret), requireStaff, itemHandler.Create)
	items.Put("/:id", AuthMiddleware(deps.JWTSecret), requireStaff, itemHandler.Update)
	items.Delete("/:id", AuthMiddleware(deps.JWTSecret), requireStaff, itemHandler.Delete)

	// Quotes (el kiosko crea sin token; listados y PDF protegidos)
	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.PublicBaseURL)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", AuthMiddleware(deps.JWTSecret), quoteHandler.List)
	quotes.Get("/:id", AuthMiddleware(deps.JWTSecret), quoteHandler.GetByID)
	quotes.Get("/:id/pdf", AuthMiddleware(deps.JWTSecret), quoteHandler.PDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard-summary", AuthMiddleware(deps.JWTSecret), dashboardHandler.Summary)

	// Sync (público, lo consume el cliente 3D)
	sync := api.Group("/sync")
	syncHandler := NewSyncHandler(deps.SyncUC)
	sync.Get("/rooms", syncHandler.Rooms)
	sync.Get("/items", syncHandler.Items)

	// Admin kiosk (solo admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole("admin"))
	adminHandler := NewAdminHandler(deps.KioskUC)
	admin.Post("/kiosk/reset-session", adminHandler.ResetSession)
	admin.Post("/kiosk/reset-hard", adminHandler.ResetHard)
	admin.Get("/status", adminHandler.Status)
}
