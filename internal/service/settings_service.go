package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/alexanderramin/sprintbudget/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	caps     repository.SprintCapRepo
	observer UseCaseObserver
}

func NewSettingsService(
	settings repository.SettingsRepo,
	caps repository.SprintCapRepo,
	observers ...UseCaseObserver,
) SettingsService {
	return &settingsService{
		settings: settings,
		caps:     caps,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		def := domain.DefaultSettings()
		return &def, nil
	}
	return settings, err
}

func (s *settingsService) Update(ctx context.Context, patch domain.SettingsPatch) (updated *domain.Settings, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "settings.update", startedAt, err, nil)
	}()

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	next := patch.Apply(*current)
	if err := next.Validate(); err != nil {
		return nil, &app.PlanError{Code: app.PlanErrInvalidSettings, Message: err.Error()}
	}
	next.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	if err := s.settings.Upsert(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *settingsService) ListSprintCaps(ctx context.Context) ([]domain.SprintCap, error) {
	return s.caps.List(ctx)
}

func (s *settingsService) SetSprintCap(ctx context.Context, c domain.SprintCap) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "settings.set_sprint_cap", startedAt, err, map[string]any{"sprint": c.Nr, "cap": c.Cap})
	}()

	if err := c.Validate(); err != nil {
		return &app.PlanError{Code: app.PlanErrInvalidSprintCap, Message: err.Error()}
	}
	return s.caps.Upsert(ctx, c)
}

// AddNextSprintCap appends an override after the highest numbered one,
// seeded with the default sprint cap.
func (s *settingsService) AddNextSprintCap(ctx context.Context) (added domain.SprintCap, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "settings.add_next_sprint_cap", startedAt, err, map[string]any{"sprint": added.Nr})
	}()

	caps, err := s.caps.List(ctx)
	if err != nil {
		return domain.SprintCap{}, err
	}
	settings, err := s.Get(ctx)
	if err != nil {
		return domain.SprintCap{}, err
	}

	c := domain.SprintCap{Nr: domain.NextSprintCapNr(caps), Cap: settings.SprintCapDefault}
	if err := s.caps.Upsert(ctx, c); err != nil {
		return domain.SprintCap{}, fmt.Errorf("adding cap for sprint %d: %w", c.Nr, err)
	}
	return c, nil
}

func (s *settingsService) RemoveSprintCap(ctx context.Context, nr int) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "settings.remove_sprint_cap", startedAt, err, map[string]any{"sprint": nr})
	}()

	return s.caps.Delete(ctx, nr)
}
