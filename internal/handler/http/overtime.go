package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OvertimeHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListTeamRequests(w http.ResponseWriter, r *http.Request)
	ExportTeamRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	DecideRequest(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
	workflow        overtime.Workflow
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService, workflow overtime.Workflow) OvertimeHandler {
	return &OvertimeHandlerImpl{
		overtimeService: overtimeService,
		workflow:        workflow,
	}
}

// CreateRequest implements OvertimeHandler.
func (h *OvertimeHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	var req overtime.CreateOvertimeRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	id, err := h.overtimeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted successfully", overtime.CreateOvertimeRequestResponse{ID: id})
}

// GetMyRequests implements OvertimeHandler.
func (h *OvertimeHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	requests, err := h.overtimeService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtime.NewListOvertimeRequestResponse(requests))
}

// ListTeamRequests implements OvertimeHandler.
func (h *OvertimeHandlerImpl) ListTeamRequests(w http.ResponseWriter, r *http.Request) {
	supervisorRef, ok := supervisorRefFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	requests, err := h.overtimeService.ListForSupervisorScope(r.Context(), supervisorRef)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtime.NewListOvertimeRequestResponse(requests))
}

// ExportTeamRequests implements OvertimeHandler.
func (h *OvertimeHandlerImpl) ExportTeamRequests(w http.ResponseWriter, r *http.Request) {
	supervisorRef, ok := supervisorRefFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	// Render fully before writing headers so errors still produce JSON.
	var buf bytes.Buffer
	if err := h.overtimeService.ExportTeamRequests(r.Context(), supervisorRef, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("overtime-requests-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("ExportTeamRequests write error", "error", err)
	}
}

// GetRequest implements OvertimeHandler.
func (h *OvertimeHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var viewer *string
	if employeeID, ok := employeeIDFromContext(r.Context()); ok {
		viewer = &employeeID
	}
	supervisorRef, _ := supervisorRefFromContext(r.Context())

	req, err := h.overtimeService.GetVisible(r.Context(), requestID, viewer, supervisorRef)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtime.NewOvertimeRequestResponse(req))
}

// DecideRequest implements OvertimeHandler.
func (h *OvertimeHandlerImpl) DecideRequest(w http.ResponseWriter, r *http.Request) {
	supervisorRef, ok := supervisorRefFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req overtime.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")
	req.SupervisorRef = supervisorRef

	result, err := h.workflow.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Overtime request %s", result.Request.Status), overtime.NewDecisionResponse(result))
}
