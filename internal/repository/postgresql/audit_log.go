package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/google/uuid"
)

type auditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) audit.Repository {
	return &auditLogRepository{db: db}
}

const auditLogColumnCount = 10

// Create implements audit.Repository.
func (r *auditLogRepository) Create(ctx context.Context, event audit.Event) error {
	return r.CreateBatch(ctx, []audit.Event{event})
}

// CreateBatch inserts all events with one statement
func (r *auditLogRepository) CreateBatch(ctx context.Context, events []audit.Event) error {
	if len(events) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(events))
	valueArgs := make([]interface{}, 0, len(events)*auditLogColumnCount)

	for i, e := range events {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}

		base := i * auditLogColumnCount
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10,
		))
		valueArgs = append(valueArgs,
			e.ID,
			string(e.Action),
			e.ActorRef,
			e.RequestID,
			e.EmployeeID,
			e.Decision,
			e.Remarks,
			e.Reconciled,
			e.Detail,
			e.CreatedAt,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO overtime_audit_logs (id, action, actor_ref, request_id, employee_id, decision, remarks, reconciled, detail, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		return apperror.Storage("failed to batch create audit logs", err)
	}

	return nil
}
