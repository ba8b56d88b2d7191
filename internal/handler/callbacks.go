package handler

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"phonegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, chatID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Form unchanged, acknowledging",
			zap.Int64("visitor_id", chatID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit form, sending new",
		zap.Error(err),
		zap.Int64("visitor_id", chatID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("visitor_id", c.Chat().ID),
	)

	switch callback.Unique {
	case btnKey.Unique:
		return h.handleKey(c)
	case btnClear.Unique:
		return h.handleClear(c)
	case btnSubmit.Unique:
		return h.handleSubmit(c)
	case btnLogout.Unique:
		return h.handleLogout(c)
	}

	if callback.Unique == "" {
		switch {
		case strings.HasPrefix(data, btnKey.Unique+"|"):
			callback.Data = strings.TrimPrefix(data, btnKey.Unique+"|")
			return h.handleKey(c)
		case data == btnClear.Unique:
			return h.handleClear(c)
		case data == btnSubmit.Unique:
			return h.handleSubmit(c)
		case data == btnLogout.Unique:
			return h.handleLogout(c)
		}
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleKey presses one keypad key
func (h *Handler) handleKey(c tele.Context) error {
	v, err := h.visitor(c.Chat().ID)
	if err != nil {
		return h.replyError(c, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.onAuthPage() {
		return c.Respond()
	}

	key := cleanCallbackData(c.Callback().Data)
	before := v.authView().text

	if v.press(key) {
		return h.submit(c, v)
	}

	// the input ignores rejected keys; the button still gets a hint
	if v.authView().text == before {
		return c.Respond(&tele.CallbackResponse{Text: keyRejectedText})
	}
	return h.editForm(c, v)
}

// handleClear empties the phone field
func (h *Handler) handleClear(c tele.Context) error {
	v, err := h.visitor(c.Chat().ID)
	if err != nil {
		return h.replyError(c, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.onAuthPage() {
		return c.Respond()
	}

	v.clear()
	return h.editForm(c, v)
}

// handleSubmit signs the visitor in with the current phone
func (h *Handler) handleSubmit(c tele.Context) error {
	v, err := h.visitor(c.Chat().ID)
	if err != nil {
		return h.replyError(c, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.onAuthPage() {
		return c.Respond()
	}

	return h.submit(c, v)
}

func (h *Handler) submit(c tele.Context, v *Visitor) error {
	if err := c.Respond(&tele.CallbackResponse{Text: loadingText}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	err := v.submit(context.Background())
	switch {
	case err == nil:
		// the route guard has already shown the dashboard
		return nil
	case errors.Is(err, service.ErrSubmitInProgress):
		return nil
	case errors.Is(err, service.ErrPhoneNotReady):
		h.logger.Debug("Submit with incomplete phone", zap.Int64("visitor_id", v.id))
	default:
		h.logger.Error("Sign-in request failed", zap.Error(err), zap.Int64("visitor_id", v.id))
	}

	page := v.authView()
	if err := c.Edit(page.text, page.markup); err != nil && !strings.Contains(err.Error(), "message is not modified") {
		return c.Send(page.text, page.markup)
	}
	return nil
}

// editForm redraws the sign-in form in place
func (h *Handler) editForm(c tele.Context, v *Visitor) error {
	page := v.authView()
	if err := c.Edit(page.text, page.markup); err != nil {
		if handleErr := h.handleEditError(err, c, v.id); handleErr == nil {
			return nil
		}
		return c.Send(page.text, page.markup)
	}
	return c.Respond()
}

// handleLogout signs the visitor out
func (h *Handler) handleLogout(c tele.Context) error {
	v, err := h.visitor(c.Chat().ID)
	if err != nil {
		return h.replyError(c, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if c.Callback() != nil {
		c.Respond()
	}

	if err := v.logout(); err != nil {
		return h.replyError(c, err)
	}
	return nil
}

func (h *Handler) replyError(c tele.Context, err error) error {
	h.logger.Error("Request failed", zap.Error(err), zap.Int64("visitor_id", c.Chat().ID))
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: genericErrorText, ShowAlert: true})
	}
	return c.Send(genericErrorText)
}
