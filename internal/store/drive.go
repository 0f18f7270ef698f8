package store

import (
	"bytes"
	"context"
	"fmt"
	"os"

	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Drive uploads payment proofs into a fixed folder, makes each file
// publicly readable, and returns the share link as the locator. Two
// sequential remote calls; failure of either fails the store.
type Drive struct {
	srv      *drivev3.Service
	folderID string
}

func NewDrive(serviceAccountJSONPath, folderID string) (*Drive, error) {
	if _, err := os.Stat(serviceAccountJSONPath); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	srv, err := drivev3.NewService(context.Background(),
		option.WithCredentialsFile(serviceAccountJSONPath),
		option.WithScopes(drivev3.DriveFileScope),
	)
	if err != nil {
		return nil, err
	}
	return &Drive{srv: srv, folderID: folderID}, nil
}

func (d *Drive) Store(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	meta := &drivev3.File{
		Name:    key,
		Parents: []string{d.folderID},
	}
	created, err := d.srv.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload: %w", err)
	}

	perm := &drivev3.Permission{Type: "anyone", Role: "reader"}
	if _, err := d.srv.Permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("drive permission: %w", err)
	}

	if created.WebViewLink != "" {
		return created.WebViewLink, nil
	}
	return "https://drive.google.com/file/d/" + created.Id + "/view", nil
}
