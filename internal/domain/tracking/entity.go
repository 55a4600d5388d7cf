package tracking

import "time"

// Visitor is one known browser, keyed by the id carried in its cookie.
// LastVisitDay dedupes the daily visit ping.
type Visitor struct {
	ID           string    `gorm:"column:id;primaryKey"`
	FirstSeenAt  time.Time `gorm:"column:first_seen_at"`
	LastSeenAt   time.Time `gorm:"column:last_seen_at"`
	LastVisitDay string    `gorm:"column:last_visit_day"`
}

func (Visitor) TableName() string { return "visitors" }
