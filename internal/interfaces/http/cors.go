package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// localOrigins orígenes de desarrollo siempre permitidos.
var localOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:5000",
}

// NewCORS middleware CORS: permite el frontend configurado, los orígenes
// locales de desarrollo y cualquier subdominio *.netlify.app (donde se
// despliega el frontend).
func NewCORS(frontendURL string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			if frontendURL != "" && origin == frontendURL {
				return true
			}
			for _, o := range localOrigins {
				if origin == o {
					return true
				}
			}
			return strings.HasSuffix(origin, ".netlify.app")
		},
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type, Authorization, X-Requested-With",
	})
}
