package models

// Submission holds the text fields of one registration form.
// ClassName arrives under the wire field name "class".
type Submission struct {
	Name       string `form:"name" validate:"required"`
	RegisterNo string `form:"register_no" validate:"required"`
	Phone      string `form:"phone" validate:"required"`
	Email      string `form:"email" validate:"required"`
	College    string `form:"college" validate:"required"`
	ClassName  string `form:"class" validate:"required"`
	Gender     string `form:"gender" validate:"required"`
	BloodGroup string `form:"blood_group" validate:"required"`
	TshirtSize string `form:"tshirt_size" validate:"required"`
}

// Attachment is the uploaded payment proof.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
