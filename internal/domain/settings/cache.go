package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sentagsite/internal/pkg/logger"
)

// cacheRow is the single persisted settings snapshot. It is the
// server-side stand-in for the 24h browser cache the site used to keep.
type cacheRow struct {
	ID        int       `gorm:"column:id;primaryKey"`
	Payload   string    `gorm:"column:payload"`
	FetchedAt time.Time `gorm:"column:fetched_at"`
}

func (cacheRow) TableName() string { return "settings_cache" }

// Cache stores the last known-good settings with a TTL.
type Cache struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewCache(db *gorm.DB, ttl time.Duration) (*Cache, error) {
	if err := db.AutoMigrate(&cacheRow{}); err != nil {
		return nil, err
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Load returns the cached settings and whether they are still fresh.
// A missing or unreadable row reports found=false.
func (c *Cache) Load(ctx context.Context) (s SiteSettings, fresh, found bool) {
	var row cacheRow
	if err := c.db.WithContext(ctx).First(&row, 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("settings: cache read failed: %v", err)
		}
		return SiteSettings{}, false, false
	}
	if err := json.Unmarshal([]byte(row.Payload), &s); err != nil {
		return SiteSettings{}, false, false
	}
	return s, time.Since(row.FetchedAt) < c.ttl, true
}

// Store overwrites the cached snapshot.
func (c *Cache) Store(ctx context.Context, s SiteSettings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	row := cacheRow{ID: 1, Payload: string(payload), FetchedAt: time.Now()}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
