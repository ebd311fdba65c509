// Package drive stores generated documents and the audit database in a
// Google Drive folder owned by a service account.
package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Mime types of the uploaded files.
const (
	XLSXMime   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SQLiteMime = "application/octet-stream"
)

// Client uploads into a single folder.
type Client struct {
	svc      *drive.Service
	folderID string
}

// New authenticates with a service account key (JSON) restricted to files
// the account creates.
func New(ctx context.Context, serviceAccountJSON, folderID string, opts ...option.ClientOption) (*Client, error) {
	if folderID == "" {
		return nil, fmt.Errorf("drive: folder id is required")
	}
	if serviceAccountJSON != "" {
		opts = append([]option.ClientOption{
			option.WithCredentialsJSON([]byte(serviceAccountJSON)),
			option.WithScopes(drive.DriveFileScope),
		}, opts...)
	}
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive: %w", err)
	}
	return &Client{svc: svc, folderID: folderID}, nil
}

// Upload creates a new file in the folder and returns its id.
func (c *Client) Upload(ctx context.Context, name string, data []byte, mime string) (string, error) {
	f, err := c.svc.Files.Create(&drive.File{Name: name, Parents: []string{c.folderID}}).
		Media(bytes.NewReader(data), googleapi.ContentType(mime)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload %s: %w", name, err)
	}
	return f.Id, nil
}

// Update replaces the content of an existing file.
func (c *Client) Update(ctx context.Context, id string, data []byte, mime string) (string, error) {
	f, err := c.svc.Files.Update(id, &drive.File{}).
		Media(bytes.NewReader(data), googleapi.ContentType(mime)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive update %s: %w", id, err)
	}
	return f.Id, nil
}

// UploadOrUpdate updates existingID when set, otherwise creates the file.
func (c *Client) UploadOrUpdate(ctx context.Context, name string, data []byte, mime, existingID string) (string, error) {
	if existingID != "" {
		return c.Update(ctx, existingID, data, mime)
	}
	return c.Upload(ctx, name, data, mime)
}

// FindByName returns the id of the first non-trashed file called name in
// the folder, or "" when there is none.
func (c *Client) FindByName(ctx context.Context, name string) (string, error) {
	list, err := c.svc.Files.List().
		Q(nameQuery(name, c.folderID)).
		Fields("files(id,name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive find %s: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

// Download returns the content of a file.
func (c *Client) Download(ctx context.Context, id string) ([]byte, error) {
	resp, err := c.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive download %s: %w", id, err)
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func nameQuery(name, folderID string) string {
	return fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), escapeQuery(folderID))
}

// escapeQuery escapes a value for a single-quoted Drive query string.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// Mirror keeps a local file in sync with a same-named file in the folder.
type Mirror struct {
	c      *Client
	name   string
	path   string
	fileID string
}

// NewMirror mirrors the local file at path under name.
func (c *Client) NewMirror(name, path string) *Mirror {
	return &Mirror{c: c, name: name, path: path}
}

// FileID is the remote id once known.
func (m *Mirror) FileID() string { return m.fileID }

// Pull downloads the remote copy over the local file. It returns false
// when no remote copy exists yet.
func (m *Mirror) Pull(ctx context.Context) (bool, error) {
	id, err := m.c.FindByName(ctx, m.name)
	if err != nil || id == "" {
		return false, err
	}
	data, err := m.c.Download(ctx, id)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", m.path, err)
	}
	m.fileID = id
	return true, nil
}

// Push uploads the local file, updating the remote copy when one is known.
func (m *Mirror) Push(ctx context.Context) error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", m.path, err)
	}
	if m.fileID == "" {
		if m.fileID, err = m.c.FindByName(ctx, m.name); err != nil {
			return err
		}
	}
	id, err := m.c.UploadOrUpdate(ctx, m.name, data, SQLiteMime, m.fileID)
	if err != nil {
		return err
	}
	m.fileID = id
	return nil
}
