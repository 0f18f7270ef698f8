package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"magis-backend/internal/models"
)

func TestCaption(t *testing.T) {
	s := models.Submission{
		Name:       "Asha Varghese",
		RegisterNo: "REG001",
		Phone:      "9876543210",
		Email:      "asha@example.com",
		College:    "St. Mary's College",
		ClassName:  "III BSc",
		Gender:     "Female",
		BloodGroup: "O+",
		TshirtSize: "M",
	}

	got := Caption(s, "30-08-2026 14:05")

	assert.True(t, strings.HasPrefix(got, "🧾 *MAGIS Registration*"))
	for _, want := range []string{
		"Name: Asha Varghese",
		"Reg No: REG001",
		"Phone: 9876543210",
		"Email: asha@example.com",
		"College: St. Mary's College",
		"Class: III BSc",
		"Gender: Female",
		"Blood Group: O+",
		"T-Shirt: M",
		"Time: 30-08-2026 14:05",
	} {
		assert.Contains(t, got, want)
	}
}
