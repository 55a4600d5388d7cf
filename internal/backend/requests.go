package backend

import (
	"context"
	"fmt"
)

// LeadRequest is one submitted quote request as the admin console sees it.
type LeadRequest struct {
	ID             int64    `json:"id"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Company        string   `json:"company"`
	Role           string   `json:"role"`
	FullName       string   `json:"full_name"`
	ObjectName     string   `json:"object_name"`
	ObjectAddress  string   `json:"object_address"`
	VisitorsInfo   string   `json:"visitors_info"`
	PoolSize       string   `json:"pool_size"`
	Deadline       string   `json:"deadline"`
	CompanyCardURL string   `json:"company_card_url"`
	PoolSchemeURLs []string `json:"pool_scheme_urls"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
}

// ListLeadRequests returns all submitted requests for the admin console.
func (c *Client) ListLeadRequests(ctx context.Context, token string) ([]LeadRequest, error) {
	var resp struct {
		Requests []LeadRequest `json:"requests"`
	}
	if err := c.getJSON(ctx, c.urls.Requests, token, &resp); err != nil {
		return nil, err
	}
	return resp.Requests, nil
}

// DeleteLeadRequest removes a request by id.
func (c *Client) DeleteLeadRequest(ctx context.Context, token string, id int64) error {
	return c.deleteJSON(ctx, fmt.Sprintf("%s?id=%d", c.urls.Requests, id), token, nil)
}
