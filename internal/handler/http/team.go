package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-overtime-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
)

type TeamHandler interface {
	ListMembers(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	teamService department.TeamService
	loc         *time.Location
	now         func() time.Time
}

// NewTeamHandler resolves "today" in loc, the zone attendance dates are
// recorded in.
func NewTeamHandler(teamService department.TeamService, loc *time.Location) TeamHandler {
	return &TeamHandlerImpl{teamService: teamService, loc: loc, now: time.Now}
}

// ListMembers implements TeamHandler.
func (h *TeamHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	supervisorRef, ok := supervisorRefFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	members, err := h.teamService.ListMembers(r.Context(), supervisorRef)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := department.TeamMembersResponse{
		TotalCount: int64(len(members)),
		Members:    make([]employee.EmployeeResponse, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, employee.NewEmployeeResponse(m))
	}
	response.Success(w, resp)
}

// ListAttendance implements TeamHandler. The date query parameter defaults to
// today in the configured zone.
func (h *TeamHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	supervisorRef, ok := supervisorRefFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	today := h.now().In(h.loc)
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, valid := validator.IsValidDate(raw)
		if !valid {
			response.ValidationError(w, map[string]string{"date": "date must be in YYYY-MM-DD format"})
			return
		}
		date = parsed
	}

	records, err := h.teamService.ListAttendance(r.Context(), supervisorRef, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := department.TeamAttendanceResponse{
		Date:       date.Format("2006-01-02"),
		TotalCount: int64(len(records)),
		Records:    make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, attendance.NewAttendanceResponse(rec))
	}
	response.Success(w, resp)
}
