package handlers

import (
	"errors"
	"net/http"

	request "floorcraft/internal/adapter/http/dto/request"
	response "floorcraft/internal/adapter/http/dto/response"
	"floorcraft/internal/domain/entities"
	"floorcraft/internal/domain/workflow"
	"floorcraft/internal/usecase"
	"floorcraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles the estimating and approval routes: project CRUD,
// spec/measurement edits, cost override, send, signatures, and the manual
// start/complete transitions.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateProject(c.Request.Context(), payload.ContractorID, payload.CustomerName)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListByContractorID(c.Request.Context(), c.Query("contractor_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, response.FromProject(p))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateSpecs patches the floor selections and returns the recomputed
// pricing tuple.
func (h *ProjectHandler) UpdateSpecs(c *gin.Context) {
	var payload request.SpecsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateSpecs(c.Request.Context(), c.Param("id"), payload.ToSpecs())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) UpdateMeasurements(c *gin.Context) {
	var payload request.MeasurementsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	rooms, stairs := payload.ToMeasurements()
	p, err := h.usecase.UpdateMeasurements(c.Request.Context(), c.Param("id"), rooms, stairs)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) OverrideCost(c *gin.Context) {
	var payload request.CostOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.OverrideCost(c.Request.Context(), c.Param("id"), payload.EstimatedCost)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) SendEstimate(c *gin.Context) {
	p, err := h.usecase.SendEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

// SubmitSignature records one party's signature. A second attempt for the
// same party returns 409 and leaves the stored signature untouched.
func (h *ProjectHandler) SubmitSignature(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	party := entities.SignatureParty(c.Param("party"))
	p, err := h.usecase.SubmitSignature(c.Request.Context(), c.Param("id"), party, payload.Signature)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) StartWork(c *gin.Context) {
	p, err := h.usecase.StartWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) CompleteWork(c *gin.Context) {
	p, err := h.usecase.CompleteWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidContractorID),
		errors.Is(err, usecase.ErrInvalidMeasurement),
		errors.Is(err, usecase.ErrTooManyRooms),
		errors.Is(err, usecase.ErrInvalidCostValue),
		errors.Is(err, usecase.ErrInvalidSignature),
		errors.Is(err, usecase.ErrInvalidParty):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, workflow.ErrAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "This contract has already been signed by this party", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
