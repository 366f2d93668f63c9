package store

import (
	"context"
	"encoding/json"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
)

// Logger receives the failures Preferences swallows.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Preferences persists the last validated input set and the theme. It is best
// effort: storage failures are logged and otherwise ignored, never retried.
type Preferences struct {
	kv        KVStore
	namespace string
	logger    Logger
}

// NewPreferences stores keys under namespace. A nil logger discards messages.
func NewPreferences(kv KVStore, namespace string, logger Logger) *Preferences {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Preferences{kv: kv, namespace: namespace, logger: logger}
}

func (p *Preferences) inputsKey() string { return p.namespace + ":inputs" }
func (p *Preferences) themeKey() string  { return p.namespace + ":theme" }

// LoadInputs returns the persisted input set, or the defaults and false when
// nothing usable is stored. A damaged record is coerced field by field.
func (p *Preferences) LoadInputs(ctx context.Context) (domain.InputSet, bool) {
	val, ok, err := p.kv.Get(ctx, p.inputsKey())
	if err != nil {
		p.logger.Debugf("load inputs: %v", err)
		return config.DefaultInputSet(), false
	}
	if !ok {
		return config.DefaultInputSet(), false
	}
	var raw config.RawInput
	if err := json.Unmarshal([]byte(val), &raw); err != nil {
		p.logger.Debugf("decode inputs: %v", err)
		return config.DefaultInputSet(), false
	}
	in, issues := config.Coerce(raw)
	for _, issue := range issues {
		p.logger.Debugf("stored inputs: %s", issue)
	}
	return in, true
}

// SaveInputs overwrites the persisted input set.
func (p *Preferences) SaveInputs(ctx context.Context, in domain.InputSet) {
	b, err := json.Marshal(config.FromInputSet(in))
	if err != nil {
		p.logger.Debugf("encode inputs: %v", err)
		return
	}
	if err := p.kv.Set(ctx, p.inputsKey(), string(b)); err != nil {
		p.logger.Debugf("save inputs: %v", err)
	}
}

// LoadTheme returns the persisted theme or the default.
func (p *Preferences) LoadTheme(ctx context.Context) domain.Theme {
	val, ok, err := p.kv.Get(ctx, p.themeKey())
	if err != nil {
		p.logger.Debugf("load theme: %v", err)
		return domain.DefaultTheme
	}
	if !ok {
		return domain.DefaultTheme
	}
	theme, err := domain.ParseTheme(val)
	if err != nil {
		p.logger.Debugf("stored theme: %v", err)
		return domain.DefaultTheme
	}
	return theme
}

// SaveTheme overwrites the persisted theme.
func (p *Preferences) SaveTheme(ctx context.Context, theme domain.Theme) {
	if err := p.kv.Set(ctx, p.themeKey(), theme.String()); err != nil {
		p.logger.Debugf("save theme: %v", err)
	}
}
