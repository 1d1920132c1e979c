package routers

import (
	"fmt"
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/delivery/http/controllers"
	"medilabx-service/internal/app/delivery/http/middlewares"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	sampleController *controllers.SampleController,
	reportController *controllers.ReportController,
	packageController *controllers.PackageController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(cors.Handler(CorsOptions(internalConfig.App.AllowedOrigins)))
	router.Use(middlewares.RateLimit())

	router.Route(BasePath(internalConfig), func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/samples", func(r chi.Router) {
			attachSampleRoutes(r, middlewares, sampleController, reportController)
		})

		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, sampleController)
		})

		r.Route("/reports", func(r chi.Router) {
			attachReportRoutes(r, middlewares, reportController)
		})

		r.Route("/test-packages", func(r chi.Router) {
			attachPackageRoutes(r, middlewares, packageController)
		})
	})
}

// CorsOptions builds the cross-origin policy. No configured origin means no
// cross-origin access, and a wildcard origin never carries credentials.
func CorsOptions(allowedOrigins []string) cors.Options {
	options := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: !slices.Contains(allowedOrigins, "*"),
		MaxAge:           300,
	}
	if len(allowedOrigins) == 0 {
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return false
		}
	}
	return options
}

// BasePath is the mount point of every gateway route, e.g. /api/v1.
func BasePath(internalConfig *config.InternalConfig) string {
	return fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
}
