package overtime

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Overtime"

var exportHeaders = []string{
	"Employee Number",
	"Employee Name",
	"Filing Date",
	"Project Number",
	"Project Name",
	"Project Phase",
	"Duration (minutes)",
	"Requested End Time",
	"Urgent",
	"Status",
	"Approved By",
	"Approved At",
	"Remarks",
}

// ExportTeamRequests implements overtime.OvertimeService.
func (s *requestService) ExportTeamRequests(ctx context.Context, supervisorRef string, w io.Writer) error {
	auth, err := s.gate.Scope(ctx, supervisorRef)
	if err != nil {
		return err
	}
	if !auth.Authorized {
		return department.ForbiddenError(auth)
	}

	requests, err := s.requests.ListByDepartmentID(ctx, auth.DepartmentID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range requests {
		row := []interface{}{
			r.EmployeeNumber,
			r.EmployeeName,
			r.FilingDate.Format("2006-01-02"),
			deref(r.ProjectNumber),
			deref(r.ProjectName),
			deref(r.ProjectPhase),
			r.DurationMinutes,
			r.RequestedEndTime.String(),
			r.IsUrgent,
			string(r.Status),
			deref(r.ApprovedBy),
			"",
			deref(r.Remarks),
		}
		if r.ApprovedAt != nil {
			row[11] = r.ApprovedAt.Format(time.RFC3339)
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
