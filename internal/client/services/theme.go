package services

import (
	"context"
	"fmt"

	"github.com/diegorighi/yukam-front/internal/client/repositories/storage"
	"github.com/diegorighi/yukam-front/internal/common"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

// ThemeService keeps the display preference in the local store.
type ThemeService interface {
	Current(ctx context.Context) Theme
	Set(ctx context.Context, t Theme) error
	Toggle(ctx context.Context) (Theme, error)
}

type themeService struct {
	repo storage.Repository
}

func NewThemeService(repo storage.Repository) ThemeService {
	return &themeService{repo: repo}
}

// Current returns the stored theme, or DefaultTheme when none is stored,
// the stored value is unknown, or it cannot be read.
func (s *themeService) Current(ctx context.Context) Theme {
	v, ok, err := s.repo.Get(ctx, common.ThemeStorageKey)
	if err != nil || !ok {
		return DefaultTheme
	}
	if t, ok := ParseTheme(v); ok {
		return t
	}
	return DefaultTheme
}

func (s *themeService) Set(ctx context.Context, t Theme) error {
	if _, ok := ParseTheme(string(t)); !ok {
		return fmt.Errorf("%w: theme %q", common.ErrInvalidInput, t)
	}
	return s.repo.Set(ctx, common.ThemeStorageKey, string(t))
}

func (s *themeService) Toggle(ctx context.Context) (Theme, error) {
	next := ThemeLight
	if s.Current(ctx) == ThemeLight {
		next = ThemeDark
	}
	if err := s.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
