package audit

import "time"

type Action string

const (
	ActionOvertimeRequested Action = "overtime.requested"
	ActionOvertimeDecided   Action = "overtime.decided"
)

type Event struct {
	ID         string
	Action     Action
	ActorRef   string
	RequestID  string
	EmployeeID string
	Decision   *string
	Remarks    *string
	Reconciled *bool
	Detail     *string
	CreatedAt  time.Time
}
