package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name     string
		regNo    string
		filename string
		want     string
	}{
		{"jpg kept", "REG001", "proof.jpg", "REG001.jpg"},
		{"jpeg kept", "REG001", "IMG_0042.JPEG", "REG001.jpeg"},
		{"png kept", "REG002", "screenshot.png", "REG002.png"},
		{"webp kept", "REG003", "photo.webp", "REG003.webp"},
		{"unknown extension coerced", "REG004", "proof.exe", "REG004.jpg"},
		{"no extension coerced", "REG005", "proof", "REG005.jpg"},
		{"double extension uses last segment", "REG006", "proof.tar.png", "REG006.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFor(tt.regNo, tt.filename))
		})
	}
}
