package services

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/kv"
)

const (
	KeyLanguage = "quran_lang"
	KeyTheme    = "quran_theme"
	KeyLastRead = "quran_last_read"
)

// AppState is the persisted user state.
type AppState struct {
	Language data.Language
	Theme    data.Theme
	LastRead *data.LastRead
}

func DefaultAppState() AppState {
	return AppState{Language: data.English, Theme: data.Midnight}
}

// Preferences keeps AppState in memory and writes every change through to
// the key-value store.
type Preferences struct {
	store  kv.Store
	logger *log.Logger

	mu    sync.Mutex
	state AppState
	// saved is the last-read pointer known to be in the store.
	saved *data.LastRead
}

func NewPreferences(store kv.Store, logger *log.Logger) *Preferences {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Preferences{store: store, logger: logger, state: DefaultAppState()}
}

// Load reads the state from the store. Unreadable or invalid values fall back
// to their defaults, so Load never fails.
func (p *Preferences) Load() AppState {
	state := DefaultAppState()

	if v, ok := p.get(KeyLanguage); ok {
		if lang, err := data.ParseLanguage(v); err == nil {
			state.Language = lang
		} else {
			p.logger.Warn("ignoring stored language", "value", v)
		}
	}

	if v, ok := p.get(KeyTheme); ok {
		if theme, err := data.ParseTheme(v); err == nil {
			state.Theme = theme
		} else {
			p.logger.Warn("ignoring stored theme", "value", v)
		}
	}

	if v, ok := p.get(KeyLastRead); ok {
		var lr data.LastRead
		if err := json.Unmarshal([]byte(v), &lr); err == nil && lr.SurahNumber > 0 {
			state.LastRead = &lr
		} else {
			p.logger.Warn("ignoring stored last read", "value", v)
		}
	}

	p.mu.Lock()
	p.state = state
	p.saved = state.LastRead
	p.mu.Unlock()
	return state
}

func (p *Preferences) get(key string) (string, bool) {
	v, ok, err := p.store.Get(key)
	if err != nil {
		p.logger.Warn("failed to read preference", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

// State returns the current in-memory state.
func (p *Preferences) State() AppState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetLanguage updates the language. The in-memory state changes even when
// persisting fails.
func (p *Preferences) SetLanguage(lang data.Language) error {
	p.mu.Lock()
	p.state.Language = lang
	p.mu.Unlock()
	return p.set(KeyLanguage, string(lang))
}

func (p *Preferences) SetTheme(theme data.Theme) error {
	p.mu.Lock()
	p.state.Theme = theme
	p.mu.Unlock()
	return p.set(KeyTheme, string(theme))
}

// UpdateLastRead records ayah of surah as the reading position. The write is
// skipped when the store already holds the same position.
func (p *Preferences) UpdateLastRead(surah data.Surah, ayah int) error {
	lr := data.LastRead{
		SurahNumber:      surah.Number,
		AyahNumber:       ayah,
		SurahName:        surah.Name,
		SurahEnglishName: surah.EnglishName,
	}

	p.mu.Lock()
	p.state.LastRead = &lr
	if cur := p.saved; cur != nil && *cur == lr {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	raw, err := json.Marshal(lr)
	if err != nil {
		return err
	}
	if err := p.set(KeyLastRead, string(raw)); err != nil {
		return err
	}

	p.mu.Lock()
	p.saved = &lr
	p.mu.Unlock()
	return nil
}

func (p *Preferences) set(key, value string) error {
	if err := p.store.Set(key, value); err != nil {
		p.logger.Warn("failed to save preference", "key", key, "err", err)
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
