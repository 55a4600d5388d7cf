package settings

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sentagsite/internal/backend"
	"sentagsite/internal/database"
)

type fakeRemote struct {
	settings   backend.SettingsMap
	getErr     error
	setErr     error
	getCalls   int
	setCalls   []string
	assetCalls []string
}

func (f *fakeRemote) GetSettings(ctx context.Context) (backend.SettingsMap, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeRemote) SetSetting(ctx context.Context, token, key string, value any) error {
	f.setCalls = append(f.setCalls, key)
	return f.setErr
}

func (f *fakeRemote) UploadSettingsAsset(ctx context.Context, token, kind, fileName, base64Content string) error {
	f.assetCalls = append(f.assetCalls, kind)
	return nil
}

func testCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	cache, err := NewCache(db, ttl)
	assert.NoError(t, err)
	return cache
}

func TestRefreshPullsRemoteSettings(t *testing.T) {
	api := &fakeRemote{settings: backend.SettingsMap{
		"show_documents_section": false,
		"seo_title":              "Custom title",
	}}
	s := NewService(api, testCache(t, time.Hour))

	s.Refresh(context.Background())

	current := s.Current()
	assert.False(t, current.ShowDocuments)
	assert.Equal(t, "Custom title", current.SEOTitle)
	// Keys the endpoint omitted keep their defaults.
	assert.Equal(t, Defaults().SEOKeywords, current.SEOKeywords)
}

func TestRefreshPrefersFreshCache(t *testing.T) {
	cache := testCache(t, time.Hour)
	api := &fakeRemote{settings: backend.SettingsMap{"seo_title": "Remote"}}

	first := NewService(api, cache)
	first.Refresh(context.Background())
	assert.Equal(t, 1, api.getCalls)

	// A second service over the same cache serves the stored row without
	// another remote call.
	second := NewService(api, cache)
	second.Refresh(context.Background())
	assert.Equal(t, 1, api.getCalls)
	assert.Equal(t, "Remote", second.Current().SEOTitle)
}

func TestRefreshFallsBackToStaleCache(t *testing.T) {
	cache := testCache(t, time.Nanosecond)
	api := &fakeRemote{settings: backend.SettingsMap{"seo_title": "Remote"}}

	first := NewService(api, cache)
	first.Refresh(context.Background())

	api.getErr = errors.New("gateway down")
	second := NewService(api, cache)
	second.Refresh(context.Background())
	assert.Equal(t, "Remote", second.Current().SEOTitle)
}

func TestRefreshFailureKeepsDefaults(t *testing.T) {
	api := &fakeRemote{getErr: errors.New("gateway down")}
	s := NewService(api, testCache(t, time.Hour))

	s.Refresh(context.Background())
	assert.Equal(t, Defaults(), s.Current())
}

func TestUpdateWritesThroughAndNotifies(t *testing.T) {
	api := &fakeRemote{settings: backend.SettingsMap{"seo_title": "Updated"}}
	s := NewService(api, testCache(t, time.Hour))

	var notified []SiteSettings
	cancel := s.Subscribe(func(v SiteSettings) { notified = append(notified, v) })
	defer cancel()

	err := s.Update(context.Background(), "tok", "seo_title", "Updated")
	assert.NoError(t, err)
	assert.Equal(t, []string{"seo_title"}, api.setCalls)
	assert.Equal(t, "Updated", s.Current().SEOTitle)
	assert.Len(t, notified, 1)
}

func TestUpdateRejectsUnknownKey(t *testing.T) {
	api := &fakeRemote{}
	s := NewService(api, testCache(t, time.Hour))

	err := s.Update(context.Background(), "tok", "not_a_key", "x")
	assert.Error(t, err)
	assert.Empty(t, api.setCalls)
}

func TestUpdateRemoteFailureLeavesSettings(t *testing.T) {
	api := &fakeRemote{setErr: errors.New("rejected")}
	s := NewService(api, testCache(t, time.Hour))

	err := s.Update(context.Background(), "tok", "seo_title", "X")
	assert.Error(t, err)
	assert.Equal(t, Defaults().SEOTitle, s.Current().SEOTitle)
}

func TestSubscribeCancel(t *testing.T) {
	api := &fakeRemote{settings: backend.SettingsMap{"seo_title": "One"}}
	s := NewService(api, testCache(t, time.Hour))

	calls := 0
	cancel := s.Subscribe(func(SiteSettings) { calls++ })
	cancel()

	assert.NoError(t, s.Update(context.Background(), "tok", "seo_title", "One"))
	assert.Zero(t, calls)
}

func TestMetaDerivesTags(t *testing.T) {
	s := SiteSettings{
		SEOTitle:       "T",
		SEODescription: "D",
		SEOKeywords:    "K",
		FaviconURL:     "/f.png",
		OGImageURL:     "/og.png",
	}
	meta := Meta(s)
	assert.Equal(t, "T", meta.Title)
	assert.Equal(t, "/f.png", meta.FaviconURL)

	byName := map[string]string{}
	for _, tag := range meta.Tags {
		byName[tag.Name] = tag.Content
	}
	assert.Equal(t, "D", byName["description"])
	assert.Equal(t, "/og.png", byName["og:image"])
	assert.Equal(t, "T", byName["twitter:title"])
}
