package handler

// Screen is the page a chat is looking at. It implements service.Navigator.
// Callers serialize access through the owning visitor.
type Screen struct {
	path      string
	listeners []pathListener
	nextID    int
	render    func(path string)
}

type pathListener struct {
	id int
	fn func(path string)
}

// NewScreen creates a screen with no page open; render draws a page once it settles
func NewScreen(render func(path string)) *Screen {
	return &Screen{render: render}
}

// CurrentPath returns the open page, or "" before the first navigation
func (s *Screen) CurrentPath() string {
	return s.path
}

// Navigate moves to path; navigating to the open page does nothing
func (s *Screen) Navigate(path string) {
	if path == s.path {
		return
	}
	s.show(path)
}

// Open shows path even if it is already open, like a reload
func (s *Screen) Open(path string) {
	s.show(path)
}

// Subscribe registers fn to run after every path change
func (s *Screen) Subscribe(fn func(path string)) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, pathListener{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// show notifies listeners first; a listener that redirects renders its own
// target, so the page is drawn only if it is still current afterwards
func (s *Screen) show(path string) {
	s.path = path

	listeners := make([]pathListener, len(s.listeners))
	copy(listeners, s.listeners)
	for _, l := range listeners {
		l.fn(path)
	}

	if s.path == path && s.render != nil {
		s.render(path)
	}
}
