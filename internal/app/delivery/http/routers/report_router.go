package routers

import (
	"medilabx-service/internal/app/delivery/http/controllers"
	"medilabx-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *controllers.ReportController) {
	router.Use(middlewares.Authenticate, middlewares.RequirePermission)

	router.Get("/{report_id}", reportController.GetReport)
	router.Get("/{report_id}/download", reportController.DownloadReport)
	router.Post("/{report_id}/notify", reportController.NotifyPatient)
}

func attachPackageRoutes(router chi.Router, middlewares *middlewares.Middlewares, packageController *controllers.PackageController) {
	router.Use(middlewares.Authenticate, middlewares.RequirePermission)

	router.Post("/savings", packageController.CalculateSavings)
}
