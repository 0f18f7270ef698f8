package store

import (
	"fmt"

	"magis-backend/internal/config"
)

func New(cfg config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.BackendLocal:
		return NewLocal(cfg.UploadDir)
	case config.BackendCloudinary:
		return NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case config.BackendDrive:
		return NewDrive(cfg.GoogleServiceAccountJSON, cfg.DriveFolderID)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
