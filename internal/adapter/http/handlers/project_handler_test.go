package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"floorcraft/internal/adapter/http/handlers/mocks"
	"floorcraft/internal/domain/entities"
	"floorcraft/internal/domain/workflow"
	"floorcraft/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing contractor id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().CreateProject(gomock.Any(), "   ", "Jane").Return(entities.Project{}, usecase.ErrInvalidContractorID)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"contractor_id":"   ","customer_name":"Jane"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().CreateProject(gomock.Any(), "contractor-1", "Jane").
			Return(entities.Project{ID: "p-1", ContractorID: "contractor-1", Status: entities.ProjectStatusDraft}, nil)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"contractor_id":"contractor-1","customer_name":"Jane"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["project_id"] != "p-1" || body["status"] != "draft" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("signature blobs are not echoed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID:                "p-1",
			Status:            entities.ProjectStatusSent,
			CustomerSignature: "data:image/png;base64,AAAA",
		}, nil)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("base64")) {
			t.Fatalf("signature blob leaked: %s", w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["customer_signed"] != true || body["contractor_signed"] != false {
			t.Fatalf("unexpected signature flags: %v", body)
		}
	})
}

func TestProjectHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	uc.EXPECT().ListByContractorID(gomock.Any(), "contractor-1").
		Return([]entities.Project{{ID: "p-1"}, {ID: "p-2"}}, nil)

	r := gin.New()
	r.GET("/v1/projects", h.ListProjects)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects?contractor_id=contractor-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(body))
	}
}

func TestProjectHandler_UpdateMeasurements(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("too many rooms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().UpdateMeasurements(gomock.Any(), "p-1", gomock.Any(), gomock.Any()).
			Return(entities.Project{}, usecase.ErrTooManyRooms)

		r := gin.New()
		r.PUT("/v1/projects/:id/measurements", h.UpdateMeasurements)

		payload := `{"rooms":[{"length":10,"width":10},{"length":10,"width":10},{"length":10,"width":10},{"length":10,"width":10}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/projects/p-1/measurements", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().UpdateMeasurements(gomock.Any(), "p-1",
			[]entities.RoomMeasurement{{Name: "living", Length: 12, Width: 10}},
			entities.StairMeasurement{Treads: 10, Risers: 11}).
			Return(entities.Project{ID: "p-1", TotalSquareFeet: 166.5}, nil)

		r := gin.New()
		r.PUT("/v1/projects/:id/measurements", h.UpdateMeasurements)

		payload := `{"rooms":[{"name":"living","length":12,"width":10}],"treads":10,"risers":11}`
		req := httptest.NewRequest(http.MethodPut, "/v1/projects/p-1/measurements", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestProjectHandler_SubmitSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/signatures/:party", h.SubmitSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/signatures/customer", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already signed conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), "p-1", entities.PartyCustomer, "sig").
			Return(entities.Project{}, workflow.ErrAlreadySigned)

		r := gin.New()
		r.POST("/v1/projects/:id/signatures/:party", h.SubmitSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/signatures/customer", bytes.NewBufferString(`{"signature":"sig"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "ALREADY_SIGNED" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})

	t.Run("second signature approves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().SubmitSignature(gomock.Any(), "p-1", entities.PartyContractor, "sig").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusApproved}, nil)

		r := gin.New()
		r.POST("/v1/projects/:id/signatures/:party", h.SubmitSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/signatures/contractor", bytes.NewBufferString(`{"signature":"sig"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "approved" {
			t.Fatalf("unexpected status: %v", body)
		}
	})
}

func TestProjectHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().StartWork(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusInProgress}, nil)

		r := gin.New()
		r.POST("/v1/projects/:id/start", h.StartWork)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().CompleteWork(gomock.Any(), "p-1").Return(entities.Project{}, errors.New("db down"))

		r := gin.New()
		r.POST("/v1/projects/:id/complete", h.CompleteWork)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
