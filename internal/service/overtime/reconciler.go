package overtime

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type reconciler struct {
	attendance attendance.AttendanceRepository
	location   *time.Location
	tracer     trace.Tracer
}

// NewReconciler returns an overtime.Reconciler writing onto attendance rows.
// loc is the zone clock-in timestamps are read in when placing the authorized
// checkout on the shift; nil means UTC.
func NewReconciler(attendanceRepo attendance.AttendanceRepository, loc *time.Location) overtime.Reconciler {
	if loc == nil {
		loc = time.UTC
	}
	return &reconciler{
		attendance: attendanceRepo,
		location:   loc,
		tracer:     otel.Tracer(tracerName),
	}
}

// Reconcile implements overtime.Reconciler.
func (r *reconciler) Reconcile(ctx context.Context, request overtime.OvertimeRequest) (overtime.ReconciliationOutcome, error) {
	ctx, span := r.tracer.Start(ctx, "overtime.Reconcile", trace.WithAttributes(
		attribute.String("overtime.request_id", request.ID),
		attribute.String("employee.id", request.EmployeeID),
	))
	defer span.End()

	outcome, err := r.reconcile(ctx, request)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return overtime.ReconciliationOutcome{}, err
	}
	span.SetAttributes(
		attribute.Bool("overtime.reconciled", outcome.Applied),
		attribute.String("overtime.reconcile_reason", outcome.Reason),
	)
	return outcome, nil
}

func (r *reconciler) reconcile(ctx context.Context, request overtime.OvertimeRequest) (overtime.ReconciliationOutcome, error) {
	open, err := r.attendance.ListOpenByEmployeeAndDate(ctx, request.EmployeeID, request.FilingDate)
	if err != nil {
		return overtime.ReconciliationOutcome{}, err
	}

	switch len(open) {
	case 0:
		return notApplied(overtime.ReasonNotClockedIn), nil
	case 1:
	default:
		return notApplied(overtime.ReasonMultipleOpenShifts), nil
	}

	record := open[0]
	applied, err := r.attendance.ApplyAuthorizedCheckout(ctx, attendance.AuthorizedCheckout{
		AttendanceID:    record.ID,
		EmployeeID:      request.EmployeeID,
		Date:            request.FilingDate,
		Checkout:        r.checkoutFor(request, record),
		OvertimeMinutes: request.DurationMinutes,
	})
	if err != nil {
		return overtime.ReconciliationOutcome{}, err
	}
	if !applied {
		// Clocked out between the lookup and the write.
		return notApplied(overtime.ReasonNotClockedIn), nil
	}

	attendanceID := record.ID
	return overtime.ReconciliationOutcome{
		Applied:      true,
		Reason:       overtime.ReasonApplied,
		AttendanceID: &attendanceID,
	}, nil
}

// checkoutFor places the requested end time on the filing date as a wall
// clock timestamp. An end time earlier than clock-in belongs to the next day.
func (r *reconciler) checkoutFor(request overtime.OvertimeRequest, record attendance.Attendance) time.Time {
	y, m, d := request.FilingDate.Date()
	checkout := request.RequestedEndTime.On(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))

	if record.ClockIn != nil {
		in := record.ClockIn.In(r.location)
		clockIn := time.Date(in.Year(), in.Month(), in.Day(), in.Hour(), in.Minute(), in.Second(), 0, time.UTC)
		if checkout.Before(clockIn) {
			checkout = checkout.AddDate(0, 0, 1)
		}
	}
	return checkout
}

func notApplied(reason string) overtime.ReconciliationOutcome {
	return overtime.ReconciliationOutcome{Applied: false, Reason: reason}
}
