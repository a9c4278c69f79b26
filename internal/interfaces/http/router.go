package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/essence-api/internal/application/auth"
	"github.com/jhoicas/essence-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	UploadUC  *usecase.UploadUseCase
	Cookie    CookieConfig
}

// Router registra las rutas de la API. Las lecturas del catálogo son públicas;
// toda mutación pasa por el mismo AuthMiddleware (un solo guard, no uno por endpoint).
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	app.Post("/auth/login", authHandler.Login)

	admin := AuthMiddleware(deps.AuthUC)

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	uploadHandler := NewUploadHandler(deps.UploadUC)
	app.Post("/upload", admin, uploadHandler.Upload)
}
