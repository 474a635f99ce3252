// Package prefs handles memoix user preferences persistence.
// Preferences are stored in ~/.config/memoix/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/memoix/internal/model"
)

// Prefs holds user preferences for memoix.
type Prefs struct {
	Theme         string `toml:"theme"`
	Filter        string `toml:"filter"` // kind shown in the list; empty shows all
	FavoritesOnly bool   `toml:"favorites_only"`
}

const (
	defaultPrefsPath = "~/.config/memoix/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used before anything is saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Any problem (missing file,
// unreadable file, bad TOML) yields defaults rather than an error so a
// damaged prefs file never keeps the UI from starting.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults(), nil
	}

	prefs := Defaults()
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Defaults(), nil
	}
	return prefs.normalise(), nil
}

// KindFilter returns the kind the list is narrowed to, or "" for all kinds.
func (p Prefs) KindFilter() model.Kind {
	k, _ := model.ParseKind(p.Filter)
	return k
}

func (p Prefs) normalise() Prefs {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	p.Filter = strings.ToLower(strings.TrimSpace(p.Filter))
	if _, ok := model.ParseKind(p.Filter); !ok {
		p.Filter = ""
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
