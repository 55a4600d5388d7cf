package tracking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"sentagsite/internal/pkg/logger"
)

// RemoteAPI is the slice of the backend client the service needs.
type RemoteAPI interface {
	TrackClick(ctx context.Context, visitorID, buttonName, buttonLocation string) error
	TrackVisit(ctx context.Context, visitorID string) error
}

type event struct {
	visitorID      string
	buttonName     string
	buttonLocation string
	isVisit        bool
}

// Service assigns visitor ids, dedupes the daily visit ping and forwards
// events to the remote tracking functions from a background worker, so a
// slow analytics endpoint never delays a page response.
type Service struct {
	api     RemoteAPI
	db      *gorm.DB
	timeout time.Duration

	queue chan event
	stop  chan struct{}
	wg    sync.WaitGroup
}

func NewService(api RemoteAPI, db *gorm.DB, queueDepth int, timeout time.Duration) (*Service, error) {
	if err := db.AutoMigrate(&Visitor{}); err != nil {
		return nil, err
	}
	s := &Service{
		api:     api,
		db:      db,
		timeout: timeout,
		queue:   make(chan event, queueDepth),
		stop:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.worker()
	return s, nil
}

// Close drains nothing; queued events not yet sent are dropped, which is
// acceptable for analytics.
func (s *Service) Close() {
	close(s.stop)
	s.wg.Wait()
}

// EnsureVisitor returns the visitor record for the given id, creating a
// fresh id when the cookie was absent or unknown.
func (s *Service) EnsureVisitor(ctx context.Context, id string) (string, error) {
	now := time.Now()
	if id != "" {
		var v Visitor
		err := s.db.WithContext(ctx).First(&v, "id = ?", id).Error
		if err == nil {
			s.db.WithContext(ctx).Model(&v).Update("last_seen_at", now)
			return v.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
	}

	fresh := newVisitorID()
	v := Visitor{ID: fresh, FirstSeenAt: now, LastSeenAt: now}
	if err := s.db.WithContext(ctx).Create(&v).Error; err != nil {
		return "", err
	}
	return fresh, nil
}

// RecordVisit queues one visit ping per visitor per calendar day.
func (s *Service) RecordVisit(ctx context.Context, visitorID string) {
	today := time.Now().Format("2006-01-02")

	var v Visitor
	err := s.db.WithContext(ctx).First(&v, "id = ?", visitorID).Error
	if err != nil {
		logger.Debugf("tracking: visit for unknown visitor %s", visitorID)
		return
	}
	if v.LastVisitDay == today {
		return
	}
	if err := s.db.WithContext(ctx).Model(&v).Update("last_visit_day", today).Error; err != nil {
		logger.Warnf("tracking: visit dedupe update failed: %v", err)
	}

	s.enqueue(event{visitorID: visitorID, isVisit: true})
}

// RecordClick queues one button-click event.
func (s *Service) RecordClick(visitorID, buttonName, buttonLocation string) {
	s.enqueue(event{
		visitorID:      visitorID,
		buttonName:     buttonName,
		buttonLocation: buttonLocation,
	})
}

func (s *Service) enqueue(ev event) {
	select {
	case s.queue <- ev:
	default:
		logger.Debugf("tracking: queue full, dropping event")
	}
}

func (s *Service) worker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.stop:
			return
		case ev := <-s.queue:
			s.send(ev)
		}
	}
}

func (s *Service) send(ev event) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var err error
	if ev.isVisit {
		err = s.api.TrackVisit(ctx, ev.visitorID)
	} else {
		err = s.api.TrackClick(ctx, ev.visitorID, ev.buttonName, ev.buttonLocation)
	}
	if err != nil {
		logger.Debugf("tracking: remote call failed: %v", err)
	}
}

func newVisitorID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
