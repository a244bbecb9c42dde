package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/logging"
)

// ErrNoApplier is returned when no color scheme backend is available.
var ErrNoApplier = errors.New("no color scheme applier available")

// LastSwitch records the most recent theme change.
type LastSwitch struct {
	Theme  entity.Theme
	Source entity.SwitchSource
	At     time.Time
}

// SwitchThemeUseCase evaluates and applies the desktop theme.
// It implements port.ThemeSwitcher.
type SwitchThemeUseCase struct {
	applier    port.ColorSchemeApplier
	postponer  port.Postponer
	preference port.ThemePreference
	now        func() time.Time

	mu   sync.Mutex
	last *LastSwitch
}

var _ port.ThemeSwitcher = (*SwitchThemeUseCase)(nil)

// NewSwitchThemeUseCase creates a new theme switcher.
func NewSwitchThemeUseCase(
	applier port.ColorSchemeApplier,
	postponer port.Postponer,
	preference port.ThemePreference,
) *SwitchThemeUseCase {
	return &SwitchThemeUseCase{
		applier:    applier,
		postponer:  postponer,
		preference: preference,
		now:        time.Now,
	}
}

// RequestSwitch applies the preferred theme unless switching is postponed.
func (uc *SwitchThemeUseCase) RequestSwitch(ctx context.Context, sc entity.SwitchContext) error {
	log := logging.FromContext(ctx).With().
		Str("component", "theme-switcher").
		Str("source", string(sc.Source)).
		Logger()

	if uc.postponer != nil && uc.postponer.IsPostponed() {
		log.Debug().Interface("postponed_by", uc.postponer.Keys()).Msg("theme switch postponed")
		return nil
	}

	theme := entity.ThemeUnknown
	if uc.preference != nil {
		theme = uc.preference.PreferredTheme()
	}
	if theme == entity.ThemeUnknown {
		log.Debug().Msg("no preferred theme configured, nothing to apply")
		return nil
	}

	return uc.UpdateTheme(ctx, theme, sc)
}

// UpdateTheme applies theme now. Postponement is not consulted.
func (uc *SwitchThemeUseCase) UpdateTheme(ctx context.Context, theme entity.Theme, sc entity.SwitchContext) error {
	log := logging.FromContext(ctx).With().
		Str("component", "theme-switcher").
		Str("source", string(sc.Source)).
		Str("theme", theme.String()).
		Logger()

	if theme != entity.ThemeLight && theme != entity.ThemeDark {
		return fmt.Errorf("%w: %s", entity.ErrInvalidTheme, theme)
	}
	if uc.applier == nil || !uc.applier.Available() {
		return ErrNoApplier
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if current, ok := uc.applier.Current(ctx); ok && current == theme {
		log.Debug().Msg("theme already active")
		return nil
	}

	if err := uc.applier.Apply(ctx, theme); err != nil {
		return fmt.Errorf("apply %s theme via %s: %w", theme, uc.applier.Name(), err)
	}

	uc.last = &LastSwitch{Theme: theme, Source: sc.Source, At: uc.now()}
	log.Info().Str("applier", uc.applier.Name()).Msg("theme switched")
	return nil
}

// LastSwitch returns the most recent change applied by this switcher, if any.
func (uc *SwitchThemeUseCase) LastSwitch() (LastSwitch, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.last == nil {
		return LastSwitch{}, false
	}
	return *uc.last, true
}
