package backend

import "context"

// SettingsMap is the raw key/value record held by the remote settings
// function. Booleans arrive as real booleans, everything else as strings.
type SettingsMap map[string]any

type setSettingRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type assetUploadRequest struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
	Kind     string `json:"kind"`
}

// GetSettings fetches the full settings record.
func (c *Client) GetSettings(ctx context.Context) (SettingsMap, error) {
	var resp struct {
		Success  bool        `json:"success"`
		Settings SettingsMap `json:"settings"`
	}
	if err := c.getJSON(ctx, c.urls.SiteSettings, "", &resp); err != nil {
		return nil, err
	}
	if resp.Settings == nil {
		return nil, &Error{Status: 200, Message: "no settings in response"}
	}
	return resp.Settings, nil
}

// SetSetting writes one key. The remote contract is one call per key.
func (c *Client) SetSetting(ctx context.Context, token, key string, value any) error {
	return c.postJSON(ctx, c.urls.SiteSettings, token, setSettingRequest{Key: key, Value: value}, nil)
}

// UploadSettingsAsset stores a favicon or OG image (base64 content) and
// returns nothing; the remote side updates the corresponding URL key.
func (c *Client) UploadSettingsAsset(ctx context.Context, token, kind, fileName, base64Content string) error {
	return c.putJSON(ctx, c.urls.SiteSettings, token, assetUploadRequest{
		FileName: fileName,
		Content:  base64Content,
		Kind:     kind,
	}, nil)
}
