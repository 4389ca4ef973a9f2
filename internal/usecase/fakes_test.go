package usecase

import (
	"context"
	"sync"
	"time"

	"shuddhify/internal/domain/entity"
	"shuddhify/internal/domain/repository"
	"shuddhify/pkg/errors"

	"github.com/google/uuid"
)

// memoryStore backs the in-memory repositories. Reports and users share one
// mutex so multi-document updates stay atomic, matching the transactional
// behavior of the Firestore implementation.
type memoryStore struct {
	mu      sync.Mutex
	reports map[string]*entity.Report
	users   map[string]*entity.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		reports: make(map[string]*entity.Report),
		users:   make(map[string]*entity.User),
	}
}

func (s *memoryStore) addUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = &entity.User{ID: id, Email: id + "@example.com", Role: "user"}
}

func (s *memoryStore) user(id string) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.users[id]
}

type memoryReportRepository struct {
	store *memoryStore

	verificationQuorum int
}

func newMemoryReportRepository(store *memoryStore) *memoryReportRepository {
	return &memoryReportRepository{store: store, verificationQuorum: 3}
}

func (r *memoryReportRepository) Create(ctx context.Context, report *entity.Report) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[report.ReportedBy]
	if !ok {
		return errors.NotFound("User", nil)
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	now := time.Now()
	report.ReportDate = now
	report.UpdatedAt = now
	if report.VerifiedBy == nil {
		report.VerifiedBy = []entity.Verification{}
	}
	report.VerificationCount = len(report.VerifiedBy)

	copied := *report
	r.store.reports[report.ID] = &copied
	user.ReportsSubmitted++
	return nil
}

func (r *memoryReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	report, ok := r.store.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	copied := *report
	return &copied, nil
}

func (r *memoryReportRepository) List(ctx context.Context, filter repository.ReportFilter) ([]*entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var reports []*entity.Report
	for _, report := range r.store.reports {
		if filter.Status != "" && report.Status != filter.Status {
			continue
		}
		if filter.Status == "" && report.Status == entity.StatusRejected {
			continue
		}
		if filter.Severity != "" && report.Severity != filter.Severity {
			continue
		}
		copied := *report
		reports = append(reports, &copied)
	}
	return reports, nil
}

func (r *memoryReportRepository) ListByReporter(ctx context.Context, reporterID string) ([]*entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var reports []*entity.Report
	for _, report := range r.store.reports {
		if report.ReportedBy == reporterID {
			copied := *report
			reports = append(reports, &copied)
		}
	}
	return reports, nil
}

func (r *memoryReportRepository) ListActive(ctx context.Context) ([]*entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var reports []*entity.Report
	for _, report := range r.store.reports {
		if report.Active() {
			copied := *report
			reports = append(reports, &copied)
		}
	}
	return reports, nil
}

func (r *memoryReportRepository) Verify(ctx context.Context, reportID, verifierID string) (*entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	report, ok := r.store.reports[reportID]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	if report.VerifiedByUser(verifierID) {
		return nil, errors.AlreadyVerified()
	}
	if report.ReportedBy == verifierID {
		return nil, errors.SelfVerification()
	}
	verifier, ok := r.store.users[verifierID]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}

	now := time.Now()
	report.VerifiedBy = append(report.VerifiedBy, entity.Verification{
		UserID:    verifierID,
		Timestamp: now,
	})
	report.VerificationCount = len(report.VerifiedBy)
	if report.VerificationCount >= r.verificationQuorum && report.Status == entity.StatusPending {
		report.Status = entity.StatusVerified
	}
	report.UpdatedAt = now

	verifier.VerificationsProvided++
	verifier.VerificationScore++
	verifier.UpdatedAt = now

	copied := *report
	return &copied, nil
}

func (r *memoryReportRepository) Delete(ctx context.Context, id, requesterID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	report, ok := r.store.reports[id]
	if !ok {
		return errors.NotFound("Report", nil)
	}
	if report.ReportedBy != requesterID {
		return errors.Forbidden("Only the original submitter can delete this report", nil)
	}
	user, ok := r.store.users[requesterID]
	if !ok {
		return errors.NotFound("User", nil)
	}

	delete(r.store.reports, id)
	user.ReportsSubmitted--
	return nil
}

type memoryUserRepository struct {
	store *memoryStore
}

func newMemoryUserRepository(store *memoryStore) *memoryUserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

type feedEvent struct {
	event   string
	payload interface{}
}

// recordingFeed captures published events for assertions.
type recordingFeed struct {
	mu     sync.Mutex
	events []feedEvent
}

func (f *recordingFeed) Publish(event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, feedEvent{event: event, payload: payload})
}

func (f *recordingFeed) named(event string) []feedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []feedEvent
	for _, e := range f.events {
		if e.event == event {
			matched = append(matched, e)
		}
	}
	return matched
}

type memoryHotspotCache struct {
	mu       sync.Mutex
	hotspots []Hotspot
	ok       bool
	gets     int
	sets     int
}

func (c *memoryHotspotCache) Get(ctx context.Context) ([]Hotspot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return c.hotspots, c.ok
}

func (c *memoryHotspotCache) Set(ctx context.Context, hotspots []Hotspot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.hotspots = hotspots
	c.ok = true
}
