package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// brokenStore fails every operation, like storage that is unavailable.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (brokenStore) Set(context.Context, string, string) error { return errors.New("storage unavailable") }
func (brokenStore) Close() error                              { return nil }

type recordingLogger struct{ lines []string }

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestPreferences_InputsRoundTrip(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferences(NewMemoryStore(), "test", nil)

	in, ok := prefs.LoadInputs(ctx)
	assert.False(t, ok)
	assert.True(t, in.Equal(config.DefaultInputSet()))

	want := config.DefaultInputSet()
	want.MonthlyRent = decimal.NewFromInt(2400)
	want.DiscountRatePercent = decimal.RequireFromString("-150")
	prefs.SaveInputs(ctx, want)

	got, ok := prefs.LoadInputs(ctx)
	assert.True(t, ok)
	assert.True(t, got.Equal(want))

	// overwritten wholesale
	prefs.SaveInputs(ctx, config.DefaultInputSet())
	got, _ = prefs.LoadInputs(ctx)
	assert.True(t, got.Equal(config.DefaultInputSet()))
}

func TestPreferences_KeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	NewPreferences(kv, "ns", nil).SaveTheme(ctx, domain.ThemeDark)

	val, ok, _ := kv.Get(ctx, "ns:theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", val)
	assert.Equal(t, domain.DefaultTheme, NewPreferences(kv, "other", nil).LoadTheme(ctx))
}

func TestPreferences_Theme(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferences(NewMemoryStore(), "test", nil)
	assert.Equal(t, domain.ThemeLight, prefs.LoadTheme(ctx))

	prefs.SaveTheme(ctx, domain.ThemeDark)
	assert.Equal(t, domain.ThemeDark, prefs.LoadTheme(ctx))
}

func TestPreferences_DamagedRecords(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	log := &recordingLogger{}
	prefs := NewPreferences(kv, "test", log)

	_ = kv.Set(ctx, "test:theme", "sepia")
	assert.Equal(t, domain.DefaultTheme, prefs.LoadTheme(ctx))

	_ = kv.Set(ctx, "test:inputs", "not json")
	in, ok := prefs.LoadInputs(ctx)
	assert.False(t, ok)
	assert.True(t, in.Equal(config.DefaultInputSet()))

	_ = kv.Set(ctx, "test:inputs", `{"price":"120000","monthly_rent":"NaN"}`)
	in, ok = prefs.LoadInputs(ctx)
	assert.True(t, ok)
	assert.True(t, in.Price.Equal(decimal.NewFromInt(120000)))
	assert.True(t, in.MonthlyRent.Equal(config.DefaultInputSet().MonthlyRent))

	assert.NotEmpty(t, log.lines)
}

func TestPreferences_FailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	log := &recordingLogger{}
	prefs := NewPreferences(brokenStore{}, "test", log)

	assert.NotPanics(t, func() {
		prefs.SaveInputs(ctx, config.DefaultInputSet())
		prefs.SaveTheme(ctx, domain.ThemeDark)
	})
	in, ok := prefs.LoadInputs(ctx)
	assert.False(t, ok)
	assert.True(t, in.Equal(config.DefaultInputSet()))
	assert.Equal(t, domain.DefaultTheme, prefs.LoadTheme(ctx))
	assert.Len(t, log.lines, 4)
}
