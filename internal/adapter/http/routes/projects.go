package routes

import (
	"floorcraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathCatalogs = "/catalogs"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, paymentHandler *handlers.PaymentHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)

		// Estimating: every edit returns the recomputed pricing tuple.
		projects.PATCH("/:id/specs", projectHandler.UpdateSpecs)
		projects.PATCH("/:id/measurements", projectHandler.UpdateMeasurements)
		projects.PATCH("/:id/cost", projectHandler.OverrideCost)

		// Payment schedule.
		projects.PATCH("/:id/schedule", paymentHandler.ChangeSchedule)
		projects.PATCH("/:id/installments", paymentHandler.UpdateInstallments)
		projects.POST("/:id/installments/:kind/pay", paymentHandler.MarkPaid)
		projects.POST("/:id/installments/:kind/collect", paymentHandler.Collect)

		// Approval workflow.
		projects.POST("/:id/send", projectHandler.SendEstimate)
		projects.POST("/:id/signatures/:party", projectHandler.SubmitSignature)
		projects.POST("/:id/start", projectHandler.StartWork)
		projects.POST("/:id/complete", projectHandler.CompleteWork)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalogs := rg.Group(PathCatalogs)
	{
		catalogs.GET("/:contractor_id", catalogHandler.GetCatalog)
		catalogs.PUT("/:contractor_id", catalogHandler.SaveCatalog)
	}
}
