package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001234567890")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "credentials.json")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")
	t.Setenv("CLOUDINARY_API_KEY", "")
	t.Setenv("CLOUDINARY_API_SECRET", "")
	t.Setenv("GOOGLE_DRIVE_FOLDER_ID", "")
	t.Setenv("REDIRECT_URL", "")
	t.Setenv("HTTP_ADDR", "")
}

func TestFromEnvDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, int64(-1001234567890), cfg.TelegramChatID)
	assert.Equal(t, BackendLocal, cfg.StorageBackend)
	assert.Equal(t, "payment_proofs", cfg.UploadDir)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "https://magis-frontend.onrender.com/submit.html", cfg.RedirectURL)
}

func TestFromEnvMissingRequired(t *testing.T) {
	for _, v := range []string{"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "GOOGLE_SHEETS_SPREADSHEET_ID", "GOOGLE_SERVICE_ACCOUNT_JSON"} {
		t.Run(v, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(v, "")

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnvBadChatID(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvUnknownBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", "s3")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvCloudinaryNeedsCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", BackendCloudinary)
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")

	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("CLOUDINARY_API_SECRET", "secret")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, BackendCloudinary, cfg.StorageBackend)
}

func TestFromEnvDriveNeedsFolder(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", BackendDrive)

	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("GOOGLE_DRIVE_FOLDER_ID", "folder-id")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "folder-id", cfg.DriveFolderID)
}
