package backend

import "context"

type trackClickRequest struct {
	VisitorID      string `json:"visitor_id"`
	ButtonName     string `json:"button_name"`
	ButtonLocation string `json:"button_location"`
}

type trackVisitRequest struct {
	VisitorID string `json:"visitor_id"`
}

// TrackClick forwards a button-click event. Callers treat failures as
// fire-and-forget; this method just reports them.
func (c *Client) TrackClick(ctx context.Context, visitorID, buttonName, buttonLocation string) error {
	return c.postJSON(ctx, c.urls.TrackClick, "", trackClickRequest{
		VisitorID:      visitorID,
		ButtonName:     buttonName,
		ButtonLocation: buttonLocation,
	}, nil)
}

// TrackVisit records a page-visit heartbeat for the visitor.
func (c *Client) TrackVisit(ctx context.Context, visitorID string) error {
	return c.postJSON(ctx, c.urls.TrackVisit, "", trackVisitRequest{VisitorID: visitorID}, nil)
}
