package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Aadithya-J/time_management/internal/cache"
	"github.com/Aadithya-J/time_management/internal/events"
	"github.com/Aadithya-J/time_management/internal/models"
	"github.com/Aadithya-J/time_management/internal/repository"
)

// Repository is the entry store the service writes through.
type Repository interface {
	Create(ctx context.Context, entry *models.TimeEntry) error
	List(ctx context.Context) ([]models.TimeEntry, error)
	GetByID(ctx context.Context, id string) (*models.TimeEntry, error)
	Delete(ctx context.Context, id string) error
}

// CreateInput carries a new entry as the client sent it.
type CreateInput struct {
	Project   string
	Name      string
	StartTime string
	EndTime   *string
	Duration  *int
}

type Service struct {
	repo   Repository
	cache  cache.ListCache
	events events.Publisher
	now    func() time.Time
	newID  func() string
}

// New wires the service. A nil cache or publisher disables that feature.
func New(repo Repository, listCache cache.ListCache, publisher events.Publisher) *Service {
	if repo == nil {
		panic("time entry repository is required")
	}
	if listCache == nil {
		listCache = cache.Noop{}
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		repo:   repo,
		cache:  listCache,
		events: publisher,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// timestampLayouts are the ISO-8601 shapes accepted for start_time and end_time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func validTimestamp(v string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Project) == "" {
		return fmt.Errorf("%w: project is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.StartTime == "" {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}
	if !validTimestamp(in.StartTime) {
		return fmt.Errorf("%w: start_time %q is not an ISO-8601 timestamp", ErrInvalidInput, in.StartTime)
	}
	if in.EndTime != nil && !validTimestamp(*in.EndTime) {
		return fmt.Errorf("%w: end_time %q is not an ISO-8601 timestamp", ErrInvalidInput, *in.EndTime)
	}
	if in.Duration != nil && *in.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	return nil
}

// List returns every entry, serving from the list cache when it holds a copy
// for the current generation.
func (s *Service) List(ctx context.Context) ([]models.TimeEntry, error) {
	gen, err := s.cache.Generation(ctx)
	cacheable := err == nil
	if err != nil {
		log.Printf("list cache generation read failed: %v", err)
	}
	if cacheable {
		entries, hit, err := s.cache.Get(ctx, gen)
		if err != nil {
			log.Printf("list cache read failed: %v", err)
		}
		if hit {
			return entries, nil
		}
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	if cacheable {
		if err := s.cache.Set(ctx, gen, entries); err != nil {
			log.Printf("list cache write failed: %v", err)
		}
	}
	return entries, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.TimeEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get time entry: %w", err)
	}
	return entry, nil
}

// Create assigns a fresh id and persists the entry.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.TimeEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	entry := &models.TimeEntry{
		ID:        s.newID(),
		Project:   in.Project,
		Name:      in.Name,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		// postgres keeps microseconds; the response must match what a later read returns
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if in.Duration != nil {
		entry.Duration = *in.Duration
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}

	s.afterWrite(ctx, events.Event{Type: events.TypeEntryCreated, EntryID: entry.ID, Entry: entry})
	return entry, nil
}

// Delete removes the entry. An absent id is treated as already deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}

	s.afterWrite(ctx, events.Event{Type: events.TypeEntryDeleted, EntryID: id})
	return nil
}

// afterWrite drops the cached list and announces the change; both are best-effort.
func (s *Service) afterWrite(ctx context.Context, event events.Event) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("list cache invalidate failed: %v", err)
	}
	event.OccurredAt = s.now().UTC()
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("publish %s for %s failed: %v", event.Type, event.EntryID, err)
	}
}
