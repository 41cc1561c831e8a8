package overtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/cmlabs-hris/hris-overtime-go/internal/service/overtime"

type workflow struct {
	requests   overtime.OvertimeRequestRepository
	gate       department.Gate
	reconciler overtime.Reconciler
	recorder   audit.Recorder
	now        func() time.Time
	tracer     trace.Tracer
}

func NewWorkflow(
	requests overtime.OvertimeRequestRepository,
	gate department.Gate,
	reconciler overtime.Reconciler,
	recorder audit.Recorder,
) overtime.Workflow {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &workflow{
		requests:   requests,
		gate:       gate,
		reconciler: reconciler,
		recorder:   recorder,
		now:        time.Now,
		tracer:     otel.Tracer(tracerName),
	}
}

// Decide implements overtime.Workflow.
//
// The status transition is committed on its own. Reconciliation runs after it
// and its failure is reported in the result, never rolled back into the
// request.
func (w *workflow) Decide(ctx context.Context, req overtime.DecideRequest) (overtime.DecisionResult, error) {
	ctx, span := w.tracer.Start(ctx, "overtime.Decide", trace.WithAttributes(
		attribute.String("overtime.request_id", req.RequestID),
		attribute.String("overtime.decision", req.Decision),
	))
	defer span.End()

	result, err := w.decide(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return overtime.DecisionResult{}, err
	}
	return result, nil
}

func (w *workflow) decide(ctx context.Context, req overtime.DecideRequest) (overtime.DecisionResult, error) {
	if err := req.Validate(); err != nil {
		return overtime.DecisionResult{}, err
	}
	status, err := req.Status()
	if err != nil {
		return overtime.DecisionResult{}, err
	}

	request, err := w.requests.GetByID(ctx, req.RequestID)
	if err != nil {
		return overtime.DecisionResult{}, err
	}

	auth, err := w.gate.Authorize(ctx, req.SupervisorRef, request.EmployeeID)
	if err != nil {
		return overtime.DecisionResult{}, err
	}
	if !auth.Authorized {
		slog.Warn("overtime decision denied",
			"request_id", request.ID,
			"employee_id", request.EmployeeID,
			"reason", auth.Reason,
		)
		return overtime.DecisionResult{}, department.ForbiddenError(auth)
	}

	if !request.IsPending() {
		return overtime.DecisionResult{}, overtime.ErrRequestAlreadyDecided
	}

	// Re-checked by the storage layer: a concurrent decision makes this fail.
	decided, err := w.requests.ApplyDecision(ctx, request.ID, status, auth.SupervisorID, req.Remarks, w.now())
	if err != nil {
		return overtime.DecisionResult{}, err
	}

	result := overtime.DecisionResult{Request: decided}
	if status == overtime.StatusApproved {
		outcome := w.reconcile(ctx, decided)
		result.Reconciliation = &outcome
	}

	w.record(ctx, auth.SupervisorID, req, result)
	return result, nil
}

func (w *workflow) reconcile(ctx context.Context, request overtime.OvertimeRequest) overtime.ReconciliationOutcome {
	outcome, err := w.reconciler.Reconcile(ctx, request)
	if err != nil {
		slog.Warn("overtime approved without attendance reconciliation",
			"request_id", request.ID,
			"employee_id", request.EmployeeID,
			"error", err,
		)
		return overtime.ReconciliationOutcome{
			Applied: false,
			Reason:  overtime.ReasonReconciliationFailed,
			Warning: err.Error(),
		}
	}
	return outcome
}

func (w *workflow) record(ctx context.Context, supervisorID string, req overtime.DecideRequest, result overtime.DecisionResult) {
	decision := string(result.Request.Status)
	event := audit.Event{
		Action:     audit.ActionOvertimeDecided,
		ActorRef:   supervisorID,
		RequestID:  result.Request.ID,
		EmployeeID: result.Request.EmployeeID,
		Decision:   &decision,
		Remarks:    req.Remarks,
		CreatedAt:  w.now(),
	}
	if result.Reconciliation != nil {
		applied := result.Reconciliation.Applied
		detail := result.Reconciliation.Reason
		event.Reconciled = &applied
		event.Detail = &detail
	}
	w.recorder.Record(ctx, event)
}
