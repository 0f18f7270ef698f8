package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendLocal      = "local"
	BackendCloudinary = "cloudinary"
	BackendDrive      = "drive"
)

type Config struct {
	TelegramToken  string
	TelegramChatID int64

	SpreadsheetID            string
	GoogleServiceAccountJSON string

	StorageBackend string
	UploadDir      string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	DriveFolderID string

	RedirectURL string
	HTTPAddr    string
}

func FromEnv() (Config, error) {
	var c Config
	c.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	c.SpreadsheetID = strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"))
	c.GoogleServiceAccountJSON = strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))

	chatID := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))
	if chatID != "" {
		v, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return c, fmt.Errorf("TELEGRAM_CHAT_ID is not a number: %w", err)
		}
		c.TelegramChatID = v
	}

	c.StorageBackend = strings.TrimSpace(os.Getenv("STORAGE_BACKEND"))
	if c.StorageBackend == "" {
		c.StorageBackend = BackendLocal
	}
	c.UploadDir = strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if c.UploadDir == "" {
		c.UploadDir = "payment_proofs"
	}

	c.CloudinaryCloudName = strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME"))
	c.CloudinaryAPIKey = strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY"))
	c.CloudinaryAPISecret = strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET"))
	c.DriveFolderID = strings.TrimSpace(os.Getenv("GOOGLE_DRIVE_FOLDER_ID"))

	c.RedirectURL = strings.TrimSpace(os.Getenv("REDIRECT_URL"))
	if c.RedirectURL == "" {
		c.RedirectURL = "https://magis-frontend.onrender.com/submit.html"
	}
	c.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}

	if c.TelegramToken == "" {
		return c, fmt.Errorf("TELEGRAM_BOT_TOKEN is empty")
	}
	if c.TelegramChatID == 0 {
		return c, fmt.Errorf("TELEGRAM_CHAT_ID is empty")
	}
	if c.SpreadsheetID == "" {
		return c, fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID is empty")
	}
	if c.GoogleServiceAccountJSON == "" {
		return c, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is empty")
	}

	switch c.StorageBackend {
	case BackendLocal:
	case BackendCloudinary:
		if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
			return c, fmt.Errorf("cloudinary backend needs CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
		}
	case BackendDrive:
		if c.DriveFolderID == "" {
			return c, fmt.Errorf("drive backend needs GOOGLE_DRIVE_FOLDER_ID")
		}
	default:
		return c, fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}

	return c, nil
}
