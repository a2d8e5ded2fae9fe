// Package provider_test covers registration, creation with defaults, and
// concurrent use of Registry.
package provider_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/paramop/config"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/provider"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// widget is a trivial product: the resolved configuration.
type widget struct {
	kind string
	size int
}

func newWidget(cfg *config.Tree) (widget, error) {
	size, err := cfg.GetInt("size")
	if err != nil {
		return widget{}, err
	}

	return widget{kind: cfg.GetOr(provider.TypeKey, ""), size: size}, nil
}

func mustDefaults(t *testing.T, kv ...string) *config.Tree {
	t.Helper()
	tree := config.New()
	for i := 0; i+1 < len(kv); i += 2 {
		require.NoError(t, tree.Set(kv[i], kv[i+1]))
	}

	return tree
}

func TestRegisterAndCreate(t *testing.T) {
	reg := provider.NewRegistry[widget]("widgets")
	require.NoError(t, reg.Register("widget.small", newWidget, mustDefaults(t, "size", "1")))
	require.NoError(t, reg.Register("widget.large", newWidget, mustDefaults(t, "size", "10")))

	require.Equal(t, []string{"widget.small", "widget.large"}, reg.Available())
	require.Equal(t, 2, reg.Len())
	require.Equal(t, "widgets", reg.Name())

	w, err := reg.Create("widget.small", nil)
	require.NoError(t, err)
	require.Equal(t, widget{kind: "widget.small", size: 1}, w)

	w, err = reg.Create("widget.large", mustDefaults(t, "size", "7"))
	require.NoError(t, err)
	require.Equal(t, 7, w.size, "caller config wins over defaults")

	w, err = reg.Create("widget.large", mustDefaults(t, "type", "widget.large", "name", "big"))
	require.NoError(t, err)
	require.Equal(t, 10, w.size, "missing keys come from defaults")
}

func TestRegistryErrors(t *testing.T) {
	reg := provider.NewRegistry[widget]("widgets")
	reg.MustRegister("widget", newWidget, mustDefaults(t, "size", "1"))

	err := reg.Register("widget", newWidget, nil)
	require.ErrorIs(t, err, provider.ErrDuplicate)
	require.ErrorIs(t, err, errs.ErrConfiguration)

	require.ErrorIs(t, reg.Register("", newWidget, nil), provider.ErrInvalidEntry)
	require.ErrorIs(t, reg.Register("other", nil, nil), provider.ErrInvalidEntry)
	require.Panics(t, func() { reg.MustRegister("widget", newWidget, nil) })

	_, err = reg.Create("gadget", nil)
	require.ErrorIs(t, err, provider.ErrUnknownType)
	require.ErrorIs(t, err, errs.ErrConfiguration)

	_, err = reg.Create("widget", mustDefaults(t, "type", "gadget"))
	require.ErrorIs(t, err, provider.ErrUnknownType)

	_, err = reg.Create("widget", mustDefaults(t, "size", "huge"))
	require.ErrorIs(t, err, config.ErrMalformedValue)

	_, err = reg.DefaultConfig("gadget")
	require.ErrorIs(t, err, provider.ErrUnknownType)
}

func TestDefaultConfigIsACopy(t *testing.T) {
	reg := provider.NewRegistry[widget]("widgets")
	reg.MustRegister("widget", newWidget, mustDefaults(t, "size", "3"))

	cfg, err := reg.DefaultConfig("widget")
	require.NoError(t, err)
	require.Equal(t, "widget", cfg.GetOr(provider.TypeKey, ""))
	require.NoError(t, cfg.Set("size", "99"))

	again, err := reg.DefaultConfig("widget")
	require.NoError(t, err)
	require.Equal(t, "3", again.GetOr("size", ""))

	entries := reg.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "widget", entries[0].Type)
}

func TestConstructorErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	reg := provider.NewRegistry[widget]("widgets")
	reg.MustRegister("broken", func(*config.Tree) (widget, error) { return widget{}, boom }, nil)

	_, err := reg.Create("broken", nil)
	require.ErrorIs(t, err, boom)
}

func TestRegistryLogsEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := provider.NewRegistry[widget]("widgets", provider.WithLogger(zap.New(core)))
	reg.MustRegister("widget", newWidget, mustDefaults(t, "size", "1"))
	_, err := reg.Create("widget", nil)
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("type registered").Len())
	created := logs.FilterMessage("object created").All()
	require.Len(t, created, 1)
	require.Equal(t, "widgets", created[0].ContextMap()["registry"])

	require.Panics(t, func() { provider.WithLogger(nil) })
}

func TestConcurrentUse(t *testing.T) {
	reg := provider.NewRegistry[widget]("widgets")
	reg.MustRegister("widget", newWidget, mustDefaults(t, "size", "1"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("widget.%d", i), newWidget, mustDefaultsNoT(i))
		}(i)
		go func() {
			defer wg.Done()
			if _, err := reg.Create("widget", nil); err != nil {
				t.Error(err)
			}
			_ = reg.Available()
		}()
	}
	wg.Wait()
	require.Equal(t, 9, reg.Len())
}

func mustDefaultsNoT(size int) *config.Tree {
	tree := config.New()
	if err := tree.Set("size", fmt.Sprint(size)); err != nil {
		panic(err)
	}

	return tree
}
