package service

import (
	"testing"

	"phonegate/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedSession(storage Storage, path string) (*SessionStore, *testutil.FakeNavigator, func()) {
	nav := testutil.NewFakeNavigator(path)
	store := NewSessionStore(storage, nav, testutil.NewTestLogger())
	guard := NewRouteGuard(store, nav, testutil.NewTestLogger())
	stop := guard.Start()
	return store, nav, stop
}

func TestRouteGuard_NoRedirectWhileLoading(t *testing.T) {
	_, nav, stop := newGuardedSession(testutil.MemoryStorage{}, "/dashboard")
	defer stop()

	assert.Empty(t, nav.History)
	assert.Equal(t, "/dashboard", nav.Path)
}

func TestRouteGuard_RedirectsAfterRestore(t *testing.T) {
	tests := []struct {
		name         string
		storage      testutil.MemoryStorage
		path         string
		expectedPath string
	}{
		{name: "anonymous on dashboard", storage: testutil.MemoryStorage{}, path: "/dashboard", expectedPath: "/auth"},
		{name: "signed in on auth", storage: testutil.MemoryStorage{"token": "abc"}, path: "/auth", expectedPath: "/dashboard"},
		{name: "anonymous on about", storage: testutil.MemoryStorage{}, path: "/about", expectedPath: "/about"},
		{name: "anonymous on root", storage: testutil.MemoryStorage{}, path: "/", expectedPath: "/auth"},
		{name: "signed in on root", storage: testutil.MemoryStorage{"token": "abc"}, path: "/", expectedPath: "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, nav, stop := newGuardedSession(tt.storage, tt.path)
			defer stop()

			require.NoError(t, store.Restore())

			assert.Equal(t, tt.expectedPath, nav.Path)
		})
	}
}

func TestRouteGuard_ReactsToTokenChanges(t *testing.T) {
	store, nav, stop := newGuardedSession(testutil.MemoryStorage{}, "/auth")
	defer stop()
	require.NoError(t, store.Restore())
	assert.Empty(t, nav.History)

	require.NoError(t, store.Set("abc"))
	assert.Equal(t, "/dashboard", nav.Path)

	require.NoError(t, store.Set(""))
	assert.Equal(t, "/auth", nav.Path)
	assert.Equal(t, []string{"/dashboard", "/auth"}, nav.History)
}

func TestRouteGuard_ReactsToPathChanges(t *testing.T) {
	store, nav, stop := newGuardedSession(testutil.MemoryStorage{}, "/about")
	defer stop()
	require.NoError(t, store.Restore())

	nav.Navigate("/dashboard")

	assert.Equal(t, "/auth", nav.Path)
	assert.Equal(t, []string{"/dashboard", "/auth"}, nav.History)
}

func TestRouteGuard_Stop(t *testing.T) {
	store, nav, stop := newGuardedSession(testutil.MemoryStorage{}, "/about")
	require.NoError(t, store.Restore())
	stop()

	nav.Navigate("/dashboard")
	require.NoError(t, store.Set(""))

	assert.Equal(t, "/dashboard", nav.Path)
}
