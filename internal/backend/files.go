package backend

import (
	"context"
	"encoding/base64"
)

// FileCategory tags an uploaded attachment on the storage side.
type FileCategory string

const (
	CategoryCompanyCard FileCategory = "company_card"
	CategoryPoolScheme  FileCategory = "pool_scheme"
)

type uploadFileRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	RequestID int64  `json:"requestId"`
	Category  string `json:"category"`
}

type uploadFileResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Error   string `json:"error"`
}

// UploadFile pushes one attachment to the remote file store and returns
// its public URL. Content is base64-encoded on the wire.
func (c *Client) UploadFile(ctx context.Context, requestID int64, category FileCategory, name, mimeType string, content []byte) (string, error) {
	req := uploadFileRequest{
		Name:      name,
		Type:      mimeType,
		Content:   base64.StdEncoding.EncodeToString(content),
		RequestID: requestID,
		Category:  string(category),
	}
	var resp uploadFileResponse
	if err := c.postJSON(ctx, c.urls.UploadFile, "", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.URL == "" {
		return "", &Error{Status: 200, Message: nonEmpty(resp.Error, "file was not stored")}
	}
	return resp.URL, nil
}
