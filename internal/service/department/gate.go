package department

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/cmlabs-hris/hris-overtime-go/internal/service/department"

type gate struct {
	directory department.DirectoryRepository
	employees employee.EmployeeRepository
	tracer    trace.Tracer
}

// NewGate returns the single authorization law shared by the approval
// workflow, scoped listings and team views. It always reads the current
// directory state.
func NewGate(directory department.DirectoryRepository, employees employee.EmployeeRepository) department.Gate {
	return &gate{
		directory: directory,
		employees: employees,
		tracer:    otel.Tracer(tracerName),
	}
}

// Scope implements department.Gate.
func (g *gate) Scope(ctx context.Context, supervisorRef string) (department.Authorization, error) {
	ctx, span := g.tracer.Start(ctx, "department.Scope")
	defer span.End()

	auth, err := g.scope(ctx, supervisorRef)
	return finish(span, auth, err)
}

// Authorize implements department.Gate.
func (g *gate) Authorize(ctx context.Context, supervisorRef string, employeeID string) (department.Authorization, error) {
	ctx, span := g.tracer.Start(ctx, "department.Authorize",
		trace.WithAttributes(attribute.String("employee.id", employeeID)))
	defer span.End()

	auth, err := g.scope(ctx, supervisorRef)
	if err != nil || !auth.Authorized {
		return finish(span, auth, err)
	}

	emp, err := g.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return finish(span, deny(auth, department.ReasonEmployeeNotInDept), nil)
		}
		return finish(span, department.Authorization{}, err)
	}
	if !emp.IsActiveMemberOf(auth.DepartmentID) {
		return finish(span, deny(auth, department.ReasonEmployeeNotInDept), nil)
	}

	return finish(span, auth, nil)
}

// scope walks supervisor -> department.
func (g *gate) scope(ctx context.Context, supervisorRef string) (department.Authorization, error) {
	if validator.IsEmpty(supervisorRef) {
		return department.Denied(department.ReasonSupervisorNotFound), nil
	}

	sup, err := g.directory.FindSupervisor(ctx, supervisorRef)
	if err != nil {
		if errors.Is(err, department.ErrSupervisorNotFound) {
			return department.Denied(department.ReasonSupervisorNotFound), nil
		}
		return department.Authorization{}, err
	}

	auth := department.Authorization{SupervisorID: sup.ID}
	if !sup.IsActive() {
		return deny(auth, department.ReasonSupervisorInactive), nil
	}

	dept, err := g.directory.GetBySupervisorID(ctx, sup.ID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return deny(auth, department.ReasonSupervisorNoDepartment), nil
		}
		return department.Authorization{}, err
	}

	auth.DepartmentID = dept.ID
	if !dept.IsActive() {
		return deny(auth, department.ReasonDepartmentInactive), nil
	}

	auth.Authorized = true
	return auth, nil
}

func deny(auth department.Authorization, reason department.Reason) department.Authorization {
	auth.Authorized = false
	auth.Reason = reason
	return auth
}

func finish(span trace.Span, auth department.Authorization, err error) (department.Authorization, error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return department.Authorization{}, err
	}
	span.SetAttributes(
		attribute.Bool("department.authorized", auth.Authorized),
		attribute.String("department.id", auth.DepartmentID),
		attribute.String("department.reason", string(auth.Reason)),
	)
	return auth, nil
}
