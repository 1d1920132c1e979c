package routers

import (
	"medilabx-service/internal/app/delivery/http/controllers"
	"medilabx-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSampleRoutes(router chi.Router, middlewares *middlewares.Middlewares, sampleController *controllers.SampleController, reportController *controllers.ReportController) {
	router.Use(middlewares.Authenticate, middlewares.RequirePermission)

	router.Get("/", sampleController.GetSamples)
	router.Get("/{booking_id}/report-form", reportController.GetReportForm)
	router.Put("/{booking_id}/report", reportController.SaveReport)
	router.Post("/{booking_id}/{action}", sampleController.TransitionSample)
}

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, sampleController *controllers.SampleController) {
	router.Use(middlewares.Authenticate, middlewares.RequirePermission)

	router.Post("/", sampleController.CreateBooking)
	router.Post("/integrated", sampleController.RunIntegratedWorkflow)
}
