package settings

import (
	"context"
	"fmt"
	"sync"

	"sentagsite/internal/backend"
	"sentagsite/internal/pkg/logger"
)

// RemoteAPI is the slice of the backend client the service needs.
type RemoteAPI interface {
	GetSettings(ctx context.Context) (backend.SettingsMap, error)
	SetSetting(ctx context.Context, token, key string, value any) error
	UploadSettingsAsset(ctx context.Context, token, kind, fileName, base64Content string) error
}

// Service keeps the current site settings in memory, backed by the
// remote settings endpoint with a local persistent cache. Reads never
// fail: when the remote call errors the last cached snapshot (or the
// defaults) stays in effect.
type Service struct {
	api   RemoteAPI
	cache *Cache

	mu      sync.RWMutex
	current SiteSettings
	loaded  bool

	subMu  sync.Mutex
	subs   map[int]func(SiteSettings)
	nextID int
}

func NewService(api RemoteAPI, cache *Cache) *Service {
	return &Service{
		api:     api,
		cache:   cache,
		current: Defaults(),
		subs:    make(map[int]func(SiteSettings)),
	}
}

// Current returns the settings in effect right now.
func (s *Service) Current() SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh loads settings, preferring a fresh cache row, then the remote
// endpoint, then any stale cache row. It never returns an error to the
// caller; failures are logged and the previous snapshot stays active.
func (s *Service) Refresh(ctx context.Context) {
	if cached, fresh, found := s.cache.Load(ctx); found && fresh {
		s.apply(cached, false)
		return
	}

	remote, err := s.api.GetSettings(ctx)
	if err != nil {
		logger.Warnf("settings: remote fetch failed: %v", err)
		if cached, _, found := s.cache.Load(ctx); found {
			s.apply(cached, false)
		}
		return
	}

	next := fromMap(remote, s.Current())
	if err := s.cache.Store(ctx, next); err != nil {
		logger.Warnf("settings: cache store failed: %v", err)
	}
	s.apply(next, true)
}

// Update writes one key through to the remote endpoint and, on success,
// re-reads the settings so every subscriber sees the new value.
func (s *Service) Update(ctx context.Context, token, key string, value any) error {
	if !knownKey(key) {
		return fmt.Errorf("unknown settings key %q", key)
	}
	if err := s.api.SetSetting(ctx, token, key, value); err != nil {
		return err
	}

	remote, err := s.api.GetSettings(ctx)
	if err != nil {
		// The write went through; fold the single change in locally.
		next := s.Current()
		applyKey(&next, key, value)
		if err := s.cache.Store(ctx, next); err != nil {
			logger.Warnf("settings: cache store failed: %v", err)
		}
		s.apply(next, true)
		return nil
	}

	next := fromMap(remote, s.Current())
	if err := s.cache.Store(ctx, next); err != nil {
		logger.Warnf("settings: cache store failed: %v", err)
	}
	s.apply(next, true)
	return nil
}

// UploadAsset pushes a favicon or OG image to the remote endpoint and
// re-reads the settings to pick up the new URL.
func (s *Service) UploadAsset(ctx context.Context, token, kind, fileName, base64Content string) error {
	if err := s.api.UploadSettingsAsset(ctx, token, kind, fileName, base64Content); err != nil {
		return err
	}
	remote, err := s.api.GetSettings(ctx)
	if err != nil {
		logger.Warnf("settings: refetch after asset upload failed: %v", err)
		return nil
	}
	next := fromMap(remote, s.Current())
	if err := s.cache.Store(ctx, next); err != nil {
		logger.Warnf("settings: cache store failed: %v", err)
	}
	s.apply(next, true)
	return nil
}

// Subscribe registers a callback invoked on every settings change. The
// returned function cancels the subscription.
func (s *Service) Subscribe(fn func(SiteSettings)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Service) apply(next SiteSettings, notify bool) {
	s.mu.Lock()
	changed := !s.loaded || next != s.current
	s.current = next
	s.loaded = true
	s.mu.Unlock()

	if !notify || !changed {
		return
	}
	s.subMu.Lock()
	fns := make([]func(SiteSettings), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(next)
	}
}

func knownKey(key string) bool {
	switch key {
	case "show_documents_section", "seo_title", "seo_description",
		"seo_keywords", "favicon_url", "og_image_url":
		return true
	}
	return false
}

func applyKey(s *SiteSettings, key string, value any) {
	switch key {
	case "show_documents_section":
		if b, ok := value.(bool); ok {
			s.ShowDocuments = b
		}
	case "seo_title":
		if v, ok := value.(string); ok {
			s.SEOTitle = v
		}
	case "seo_description":
		if v, ok := value.(string); ok {
			s.SEODescription = v
		}
	case "seo_keywords":
		if v, ok := value.(string); ok {
			s.SEOKeywords = v
		}
	case "favicon_url":
		if v, ok := value.(string); ok {
			s.FaviconURL = v
		}
	case "og_image_url":
		if v, ok := value.(string); ok {
			s.OGImageURL = v
		}
	}
}

// fromMap folds the remote key/value map over a base record, so keys the
// endpoint omits keep their previous values.
func fromMap(m backend.SettingsMap, base SiteSettings) SiteSettings {
	next := base
	if v, ok := m["show_documents_section"].(bool); ok {
		next.ShowDocuments = v
	}
	if v, ok := m["seo_title"].(string); ok && v != "" {
		next.SEOTitle = v
	}
	if v, ok := m["seo_description"].(string); ok && v != "" {
		next.SEODescription = v
	}
	if v, ok := m["seo_keywords"].(string); ok && v != "" {
		next.SEOKeywords = v
	}
	if v, ok := m["favicon_url"].(string); ok && v != "" {
		next.FaviconURL = v
	}
	if v, ok := m["og_image_url"].(string); ok && v != "" {
		next.OGImageURL = v
	}
	return next
}
