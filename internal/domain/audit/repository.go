package audit

import "context"

// Repository - interface for overtime_audit_logs table
type Repository interface {
	Create(ctx context.Context, event Event) error
	CreateBatch(ctx context.Context, events []Event) error
}
