package tracking

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"sentagsite/internal/database"
)

type fakeRemote struct {
	mu     sync.Mutex
	clicks []string
	visits []string
}

func (f *fakeRemote) TrackClick(ctx context.Context, visitorID, buttonName, buttonLocation string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clicks = append(f.clicks, buttonName+"@"+buttonLocation)
	return nil
}

func (f *fakeRemote) TrackVisit(ctx context.Context, visitorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits = append(f.visits, visitorID)
	return nil
}

func (f *fakeRemote) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clicks), len(f.visits)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	return db
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestEnsureVisitorIssuesAndKeepsID(t *testing.T) {
	api := &fakeRemote{}
	s, err := NewService(api, testDB(t), 16, time.Second)
	assert.NoError(t, err)
	defer s.Close()

	id, err := s.EnsureVisitor(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, id, 32)

	// A known id round-trips unchanged.
	same, err := s.EnsureVisitor(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, same)

	// An unknown id from a foreign cookie is replaced.
	other, err := s.EnsureVisitor(context.Background(), "made-up")
	assert.NoError(t, err)
	assert.NotEqual(t, "made-up", other)
}

func TestRecordVisitDedupesPerDay(t *testing.T) {
	api := &fakeRemote{}
	s, err := NewService(api, testDB(t), 16, time.Second)
	assert.NoError(t, err)
	defer s.Close()

	id, err := s.EnsureVisitor(context.Background(), "")
	assert.NoError(t, err)

	s.RecordVisit(context.Background(), id)
	waitFor(t, func() bool { _, v := api.counts(); return v == 1 })

	// Same day: swallowed locally, nothing else reaches the remote side.
	s.RecordVisit(context.Background(), id)
	s.RecordVisit(context.Background(), id)
	time.Sleep(50 * time.Millisecond)
	_, visits := api.counts()
	assert.Equal(t, 1, visits)
}

func TestRecordClickDelivered(t *testing.T) {
	api := &fakeRemote{}
	s, err := NewService(api, testDB(t), 16, time.Second)
	assert.NoError(t, err)
	defer s.Close()

	s.RecordClick("v-1", "Запросить расчет", "hero")
	waitFor(t, func() bool { c, _ := api.counts(); return c == 1 })

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, "Запросить расчет@hero", api.clicks[0])
}
