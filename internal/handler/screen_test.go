package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_NavigateRendersOnce(t *testing.T) {
	var rendered []string
	s := NewScreen(func(path string) { rendered = append(rendered, path) })

	assert.Equal(t, "", s.CurrentPath())

	s.Navigate("/about")
	s.Navigate("/about")

	assert.Equal(t, "/about", s.CurrentPath())
	assert.Equal(t, []string{"/about"}, rendered)
}

func TestScreen_OpenReloadsCurrentPage(t *testing.T) {
	var rendered []string
	s := NewScreen(func(path string) { rendered = append(rendered, path) })

	s.Open("/auth")
	s.Open("/auth")

	assert.Equal(t, []string{"/auth", "/auth"}, rendered)
}

func TestScreen_RedirectingListenerRendersOnlyTarget(t *testing.T) {
	var rendered []string
	s := NewScreen(func(path string) { rendered = append(rendered, path) })

	s.Subscribe(func(path string) {
		if path == "/dashboard" {
			s.Navigate("/auth")
		}
	})

	s.Navigate("/dashboard")

	assert.Equal(t, "/auth", s.CurrentPath())
	assert.Equal(t, []string{"/auth"}, rendered)
}

func TestScreen_Unsubscribe(t *testing.T) {
	s := NewScreen(nil)

	var first, second []string
	unsubscribe := s.Subscribe(func(path string) { first = append(first, path) })
	s.Subscribe(func(path string) { second = append(second, path) })

	s.Navigate("/a")
	unsubscribe()
	s.Navigate("/b")

	assert.Equal(t, []string{"/a"}, first)
	assert.Equal(t, []string{"/a", "/b"}, second)
}
