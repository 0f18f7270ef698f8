package sheets

import (
	"context"

	"magis-backend/internal/models"
)

const SheetRegistrations = "Registrations"

// AppendSubmission writes one registration row. The store is append-only:
// no lookups, no updates, no uniqueness checks. Column order is fixed —
// the nine form fields as declared, then the notifier outcome, then the
// asset locator, then the server timestamp.
func (c *Client) AppendSubmission(ctx context.Context, s models.Submission, notifyStatus, assetLocator, submittedAt string) error {
	return c.appendRow(ctx, SheetRegistrations, []interface{}{
		s.Name,
		s.RegisterNo,
		s.Phone,
		s.Email,
		s.College,
		s.ClassName,
		s.Gender,
		s.BloodGroup,
		s.TshirtSize,
		notifyStatus,
		assetLocator,
		submittedAt,
	})
}
