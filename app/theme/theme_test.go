package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/linkhub/app/enum"
	"github.com/umputun/linkhub/app/theme/mocks"
)

var errNotStored = errors.New("not stored")

// newEnv returns an environment mock backed by a single in-memory slot.
func newEnv(stored string, prefersDark bool) (*mocks.EnvironmentMock, *string) {
	slot := stored
	return &mocks.EnvironmentMock{
		GetFunc: func(context.Context) (string, error) {
			if slot == "" {
				return "", errNotStored
			}
			return slot, nil
		},
		SetFunc: func(_ context.Context, value string) error {
			slot = value
			return nil
		},
		PrefersDarkFunc: func(context.Context) bool { return prefersDark },
	}, &slot
}

func TestController_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		stored      string
		prefersDark bool
		expected    enum.Theme
	}{
		{name: "nothing stored, system dark", prefersDark: true, expected: enum.ThemeDark},
		{name: "nothing stored, system light", prefersDark: false, expected: enum.ThemeLight},
		{name: "stored light overrides system dark", stored: "light", prefersDark: true, expected: enum.ThemeLight},
		{name: "stored dark overrides system light", stored: "dark", prefersDark: false, expected: enum.ThemeDark},
		{name: "stored dark with system dark", stored: "dark", prefersDark: true, expected: enum.ThemeDark},
		{name: "invalid stored value falls back to system", stored: "sepia", prefersDark: true, expected: enum.ThemeDark},
		{name: "invalid stored value falls back to light", stored: "system", prefersDark: false, expected: enum.ThemeLight},
		{name: "stored value with spaces", stored: " dark ", prefersDark: false, expected: enum.ThemeDark},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, _ := newEnv(tc.stored, tc.prefersDark)
			marker := &Marker{}
			c := New(env, marker)
			assert.False(t, c.Ready())

			assert.Equal(t, tc.expected, c.Resolve(context.Background()))
			assert.Equal(t, tc.expected, c.Theme())
			assert.Equal(t, tc.expected.Dark(), marker.Dark())
			assert.True(t, c.Ready())
			assert.Equal(t, enum.ReadinessReady, c.State())
			assert.Empty(t, env.SetCalls(), "resolve never writes the store")
		})
	}
}

func TestController_ResolveSkipsSystemWhenStored(t *testing.T) {
	env, _ := newEnv("light", true)
	c := New(env, &Marker{})
	c.Resolve(context.Background())
	assert.Empty(t, env.PrefersDarkCalls())
}

func TestController_ResolveIdempotent(t *testing.T) {
	env, _ := newEnv("", true)
	c := New(env, &Marker{})
	first := c.Resolve(context.Background())
	second := c.Resolve(context.Background())
	assert.Equal(t, first, second)
}

func TestController_Toggle(t *testing.T) {
	t.Run("light to dark persists and marks root", func(t *testing.T) {
		env, slot := newEnv("light", false)
		root := &mocks.RootMock{MarkDarkFunc: func(bool) {}}
		c := New(env, root)
		c.Resolve(context.Background())

		c.Toggle(context.Background())
		assert.Equal(t, enum.ThemeDark, c.Theme())
		assert.Equal(t, "dark", *slot)
		calls := root.MarkDarkCalls()
		require.Len(t, calls, 2)
		assert.False(t, calls[0].Dark)
		assert.True(t, calls[1].Dark)
	})

	t.Run("round trip restores value and stored entry", func(t *testing.T) {
		env, slot := newEnv("dark", false)
		marker := &Marker{}
		c := New(env, marker)
		c.Resolve(context.Background())

		c.Toggle(context.Background())
		c.Toggle(context.Background())
		assert.Equal(t, enum.ThemeDark, c.Theme())
		assert.Equal(t, "dark", *slot)
		assert.True(t, marker.Dark())
		assert.Equal(t, "dark", marker.Class())
	})

	t.Run("store failure keeps session state", func(t *testing.T) {
		env := &mocks.EnvironmentMock{
			GetFunc:         func(context.Context) (string, error) { return "", errNotStored },
			SetFunc:         func(context.Context, string) error { return errors.New("disk full") },
			PrefersDarkFunc: func(context.Context) bool { return false },
		}
		marker := &Marker{}
		c := New(env, marker)
		c.Resolve(context.Background())

		c.Toggle(context.Background())
		assert.Equal(t, enum.ThemeDark, c.Theme())
		assert.True(t, marker.Dark())
		require.Len(t, env.SetCalls(), 1)
		assert.Equal(t, "dark", env.SetCalls()[0].Value)
	})

	t.Run("toggle before resolve is ignored", func(t *testing.T) {
		env, slot := newEnv("", false)
		root := &mocks.RootMock{MarkDarkFunc: func(bool) {}}
		c := New(env, root)

		c.Toggle(context.Background())
		assert.False(t, c.Ready())
		assert.Equal(t, enum.ThemeLight, c.Theme())
		assert.Empty(t, *slot)
		assert.Empty(t, root.MarkDarkCalls())
		assert.Empty(t, env.SetCalls())
	})

	t.Run("resolve after toggle reads the new value", func(t *testing.T) {
		env, _ := newEnv("", false)
		c := New(env, &Marker{})
		c.Resolve(context.Background())
		c.Toggle(context.Background())

		next := New(env, &Marker{})
		assert.Equal(t, enum.ThemeDark, next.Resolve(context.Background()))
	})
}

func TestEnv(t *testing.T) {
	st := &mocks.EnvironmentMock{
		GetFunc: func(context.Context) (string, error) { return "dark", nil },
		SetFunc: func(context.Context, string) error { return nil },
	}
	sp := &mocks.EnvironmentMock{PrefersDarkFunc: func(context.Context) bool { return true }}

	e := Env(st, sp)
	v, err := e.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
	assert.True(t, e.PrefersDark(context.Background()))
	require.NoError(t, e.Set(context.Background(), "light"))
	assert.Len(t, st.SetCalls(), 1)
	assert.Empty(t, st.PrefersDarkCalls())
}

func TestMarker(t *testing.T) {
	m := &Marker{}
	assert.False(t, m.Dark())
	assert.Empty(t, m.Class())
	m.MarkDark(true)
	assert.Equal(t, "dark", m.Class())
	m.MarkDark(false)
	assert.Empty(t, m.Class())
}
