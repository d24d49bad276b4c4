package handlers

import (
	"errors"
	"net/http"

	request "floorcraft/internal/adapter/http/dto/request"
	response "floorcraft/internal/adapter/http/dto/response"
	"floorcraft/internal/usecase"
	"floorcraft/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the contractor price template.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	cat, err := h.usecase.GetActive(c.Request.Context(), c.Param("contractor_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalog(cat))
}

func (h *CatalogHandler) SaveCatalog(c *gin.Context) {
	var payload request.SaveCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cat, err := h.usecase.Save(c.Request.Context(), payload.ToCatalog(c.Param("contractor_id")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalog(cat))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractorID), errors.Is(err, usecase.ErrInvalidCatalog):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
