package handler

import (
	"context"
	"sync"
	"time"

	"phonegate/internal/domain"
	"phonegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Visitor is one chat's browser: local storage, session, current page and sign-in form.
// All methods expect mu to be held.
type Visitor struct {
	mu       sync.Mutex
	id       int64
	lastSeen time.Time

	h         *Handler
	logger    *zap.Logger
	storage   *service.LocalStorage
	session   *service.SessionStore
	screen    *Screen
	phone     *service.PhoneInput
	keypad    *service.Keypad
	form      *service.SignInForm
	stopGuard func()
}

func newVisitor(h *Handler, id int64) (*Visitor, error) {
	v := &Visitor{
		id:     id,
		h:      h,
		logger: h.logger.With(zap.Int64("visitor_id", id)),
	}

	v.storage = service.NewLocalStorage(h.storage, id)
	v.screen = NewScreen(v.render)
	v.session = service.NewSessionStore(v.storage, v.screen, v.logger)
	v.resetForm()
	v.stopGuard = service.NewRouteGuard(v.session, v.screen, v.logger).Start()

	if err := v.session.Restore(); err != nil {
		v.stopGuard()
		return nil, err
	}

	return v, nil
}

// resetForm replaces the sign-in form with a fresh, unmounted one
func (v *Visitor) resetForm() {
	v.phone = service.NewPhoneInput("")
	v.keypad = service.NewKeypad(v.phone)
	v.form = service.NewSignInForm(v.phone, v.h.fetcher, v.storage, v.session, v.logger)
}

func (v *Visitor) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopGuard()
}

// open shows a page; the route guard may redirect before it is drawn
func (v *Visitor) open(path string) {
	v.screen.Open(path)
}

// paste replaces the phone value with text, the way pasting into an empty field does
func (v *Visitor) paste(text string) bool {
	if !v.phone.OnPaste(text) {
		return false
	}
	if !v.phone.OnChange(text) {
		return false
	}
	v.keypad.Reset()
	return true
}

// press forwards a keypad button; it reports whether Enter was pressed
func (v *Visitor) press(key string) bool {
	return v.keypad.Press(key)
}

func (v *Visitor) clear() {
	v.phone.Clear()
	v.keypad.Reset()
}

// submit runs the sign-in; on success the route guard moves the visitor to the dashboard
func (v *Visitor) submit(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, v.h.fetchTimeout)
	defer cancel()
	return v.form.Submit(ctx)
}

func (v *Visitor) logout() error {
	return v.session.Logout()
}

func (v *Visitor) onAuthPage() bool {
	return domain.IsAuthRoute(v.screen.CurrentPath())
}

// render draws path as a new message
func (v *Visitor) render(path string) {
	switch {
	case path == domain.RouteRoot:
		return
	case domain.IsAuthRoute(path):
		// every visit to the sign-in page mounts a new form
		v.resetForm()
		v.phone.Mount(v.focus)
		v.send(v.authView())
	case path == domain.RouteDashboard:
		v.sendDashboard()
	case path == domain.RouteAbout:
		v.send(aboutView())
	default:
		v.send(notFoundView())
	}
}

// focus opens the chat's text input, as focusing the phone field does
func (v *Visitor) focus() {
	v.send(view{
		text:   focusPromptText,
		markup: &tele.ReplyMarkup{ForceReply: true},
	})
}

func (v *Visitor) authView() view {
	return authView(authState{
		phone:    v.phone.FormattedPhone(),
		caret:    v.keypad.Caret(),
		err:      v.phone.Err(),
		valid:    v.phone.IsValid(),
		loading:  v.form.Loading(),
		fetchErr: v.form.LastError(),
	})
}

func (v *Visitor) sendDashboard() {
	user := v.h.profiles.Cached(v.storage).Primary()
	page := dashboardView(user)

	if user.Picture.Large == "" {
		v.send(page)
		return
	}

	photo := &tele.Photo{File: tele.FromURL(user.Picture.Large), Caption: page.text}
	if _, err := v.h.sender.Send(tele.ChatID(v.id), photo, page.markup); err != nil {
		v.logger.Warn("Failed to send profile photo, falling back to text", zap.Error(err))
		v.send(page)
	}
}

func (v *Visitor) send(page view) {
	var err error
	if page.markup != nil {
		_, err = v.h.sender.Send(tele.ChatID(v.id), page.text, page.markup)
	} else {
		_, err = v.h.sender.Send(tele.ChatID(v.id), page.text)
	}
	if err != nil {
		v.logger.Error("Failed to render page",
			zap.Error(err),
			zap.String("path", v.screen.CurrentPath()),
		)
	}
}
