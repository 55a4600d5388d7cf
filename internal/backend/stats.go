package backend

import "context"

// ClickStat is one aggregated button counter.
type ClickStat struct {
	ButtonName     string `json:"button_name"`
	ButtonLocation string `json:"button_location"`
	Count          int64  `json:"count,omitempty"`
	TotalClicks    int64  `json:"total_clicks,omitempty"`
}

// ClickStats is the 30-day statistics view served to the admin console.
type ClickStats struct {
	ByDay          map[string][]ClickStat `json:"stats_by_day"`
	Totals         []ClickStat            `json:"total_stats"`
	UniqueVisitors int64                  `json:"unique_visitors"`
}

// GetClickStats fetches aggregated click/visit statistics.
func (c *Client) GetClickStats(ctx context.Context, token string) (*ClickStats, error) {
	var stats ClickStats
	if err := c.getJSON(ctx, c.urls.ClickStats, token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ClearClickStats wipes the collected statistics.
func (c *Client) ClearClickStats(ctx context.Context, token string) error {
	return c.postJSON(ctx, c.urls.ClickStats, token, struct {
		Action string `json:"action"`
	}{Action: "clear"}, nil)
}
