package backend

import (
	"context"
	"fmt"
)

// Document is a library entry backed by the remote file store.
type Document struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
	FileURL     string `json:"file_url"`
	FileName    string `json:"file_name"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	CreatedAt   string `json:"created_at"`
}

// DocumentUpload carries a new or updated document. FileContent and
// Thumbnail are base64-encoded; Thumbnail is optional.
type DocumentUpload struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	FileName    string `json:"fileName,omitempty"`
	FileType    string `json:"fileType,omitempty"`
	FileContent string `json:"fileContent,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// ListDocuments returns the public document library.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var resp struct {
		Documents []Document `json:"documents"`
	}
	if err := c.getJSON(ctx, c.urls.Documents, "", &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// UploadDocument creates a document. Auth token required.
func (c *Client) UploadDocument(ctx context.Context, token string, doc *DocumentUpload) (int64, error) {
	var resp struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	if err := c.postJSON(ctx, c.urls.Documents, token, doc, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateDocument replaces metadata and optionally the stored file.
func (c *Client) UpdateDocument(ctx context.Context, token string, doc *DocumentUpload) error {
	return c.putJSON(ctx, c.urls.Documents, token, doc, nil)
}

// DeleteDocument removes a document by id.
func (c *Client) DeleteDocument(ctx context.Context, token string, id int64) error {
	return c.deleteJSON(ctx, fmt.Sprintf("%s?id=%d", c.urls.Documents, id), token, nil)
}
