package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/audit"
	"github.com/slack-go/slack"
)

// Notifier posts overtime audit events to a Slack channel.
type Notifier struct {
	client    *slack.Client
	channelID string
}

func NewNotifier(token string, channelID string, options ...slack.Option) *Notifier {
	return &Notifier{
		client:    slack.New(token, options...),
		channelID: channelID,
	}
}

// Deliver implements audit.Sink.
func (n *Notifier) Deliver(ctx context.Context, events []audit.Event) error {
	for _, e := range events {
		_, _, err := n.client.PostMessageContext(ctx,
			n.channelID,
			slack.MsgOptionText(FormatEvent(e), false),
		)
		if err != nil {
			return fmt.Errorf("failed to post message to Slack: %w", err)
		}
	}
	return nil
}

// FormatEvent renders one event as a single message line.
func FormatEvent(e audit.Event) string {
	var b strings.Builder
	switch e.Action {
	case audit.ActionOvertimeDecided:
		decision := "decided"
		if e.Decision != nil {
			decision = *e.Decision
		}
		fmt.Fprintf(&b, "Overtime request %s %s by %s (employee %s)", e.RequestID, decision, e.ActorRef, e.EmployeeID)
		if e.Reconciled != nil {
			if *e.Reconciled {
				b.WriteString(", attendance updated")
			} else if e.Detail != nil {
				fmt.Fprintf(&b, ", attendance not updated: %s", *e.Detail)
			}
		}
	case audit.ActionOvertimeRequested:
		fmt.Fprintf(&b, "Overtime request %s filed by employee %s", e.RequestID, e.EmployeeID)
	default:
		fmt.Fprintf(&b, "%s on overtime request %s by %s", e.Action, e.RequestID, e.ActorRef)
	}
	if e.Remarks != nil && *e.Remarks != "" {
		fmt.Fprintf(&b, "\nRemarks: %s", *e.Remarks)
	}
	return b.String()
}
