package testutil

import (
	"fmt"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// TestToken is the login uuid of ProfileJSON
const TestToken = "155e77ee-ba6d-486f-95ce-0e0c0fb4b919"

// ProfileJSON returns a random-user payload whose login uuid is token
func ProfileJSON(token string) []byte {
	return []byte(fmt.Sprintf(`{
		"results": [{
			"gender": "female",
			"name": {"title": "Ms", "first": "Shirin", "last": "Rad"},
			"email": "shirin.rad@example.com",
			"login": {"uuid": %q, "username": "bluecat42"},
			"picture": {"large": "https://randomuser.me/api/portraits/women/12.jpg"},
			"nat": "US"
		}],
		"info": {"seed": "abc", "results": 1, "page": 1, "version": "1.4"}
	}`, token))
}

// FakeNavigator records navigations and notifies subscribers synchronously
type FakeNavigator struct {
	Path    string
	History []string

	listeners map[int]func(string)
	nextID    int
}

// NewFakeNavigator creates a navigator showing path
func NewFakeNavigator(path string) *FakeNavigator {
	return &FakeNavigator{
		Path:      path,
		listeners: make(map[int]func(string)),
	}
}

func (n *FakeNavigator) Navigate(path string) {
	n.Path = path
	n.History = append(n.History, path)
	for id := 0; id < n.nextID; id++ {
		if fn, ok := n.listeners[id]; ok {
			fn(path)
		}
	}
}

func (n *FakeNavigator) CurrentPath() string {
	return n.Path
}

func (n *FakeNavigator) Subscribe(fn func(path string)) func() {
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// MemoryStorage is a map-backed service.Storage
type MemoryStorage map[string]string

func (s MemoryStorage) GetItem(key string) (string, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s MemoryStorage) SetItem(key, value string) error {
	s[key] = value
	return nil
}

func (s MemoryStorage) RemoveItem(key string) error {
	delete(s, key)
	return nil
}
