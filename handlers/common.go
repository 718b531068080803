package handlers

import (
	"fmt"

	"github.com/accredia/naac_services/notifications"
)

// sendEmail delivers a rendered message, folding a template-render failure
// into the same error channel so callers report one outcome per recipient.
func sendEmail(sender notifications.Sender, toName, toEmail string, msg notifications.Message, renderErr error) error {
	if renderErr != nil {
		return renderErr
	}
	if toEmail == "" {
		return fmt.Errorf("recipient email not configured")
	}
	return sender.Send(toName, toEmail, msg.Subject, msg.HTML, msg.Text)
}

func errMessage(err error) interface{} {
	if err == nil {
		return nil
	}
	return err.Error()
}
