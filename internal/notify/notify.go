package notify

import (
	"context"
	"fmt"

	"magis-backend/internal/models"
)

// Status is the recorded outcome of the notification attempt.
type Status string

const (
	StatusSent         Status = "sent"
	StatusFailed       Status = "failed"
	StatusException    Status = "exception"
	StatusNotAttempted Status = "not-attempted"
)

type Notifier interface {
	// Notify sends a submission summary plus the payment proof to the
	// configured destination. It never returns an error: delivery is
	// best-effort and the outcome is reported as a Status.
	Notify(ctx context.Context, s models.Submission, att models.Attachment, stamp string) Status
}

// Caption renders the fixed summary template sent alongside the proof image.
func Caption(s models.Submission, stamp string) string {
	return fmt.Sprintf(
		"🧾 *MAGIS Registration*\n\n"+
			"👤 Name: %s\n"+
			"🆔 Reg No: %s\n"+
			"📞 Phone: %s\n"+
			"📧 Email: %s\n"+
			"🏫 College: %s\n"+
			"🏷 Class: %s\n"+
			"🚻 Gender: %s\n"+
			"🩸 Blood Group: %s\n"+
			"👕 T-Shirt: %s\n"+
			"⏰ Time: %s",
		s.Name, s.RegisterNo, s.Phone, s.Email, s.College,
		s.ClassName, s.Gender, s.BloodGroup, s.TshirtSize, stamp,
	)
}
