package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleOpen returns a handler that opens path, e.g. /start opens the root page
func (h *Handler) handleOpen(path string) tele.HandlerFunc {
	return func(c tele.Context) error {
		v, err := h.visitor(c.Chat().ID)
		if err != nil {
			return h.replyError(c, err)
		}

		h.logger.Info("Opening page",
			zap.Int64("visitor_id", v.id),
			zap.String("path", path),
		)

		v.mu.Lock()
		defer v.mu.Unlock()

		v.open(path)
		return nil
	}
}

// handleText treats unknown commands as paths and other text as a paste into the phone field
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	if strings.HasPrefix(text, "/") {
		return h.handleOpen(commandPath(text))(c)
	}

	return h.pastePhone(c, text)
}

// handleContact pastes a shared contact's number into the phone field
func (h *Handler) handleContact(c tele.Context) error {
	contact := c.Message().Contact
	if contact == nil {
		return nil
	}
	return h.pastePhone(c, contact.PhoneNumber)
}

func (h *Handler) pastePhone(c tele.Context, text string) error {
	v, err := h.visitor(c.Chat().ID)
	if err != nil {
		return h.replyError(c, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.onAuthPage() {
		return c.Send(notOnFormText)
	}

	if !v.paste(text) {
		h.logger.Debug("Paste rejected", zap.Int64("visitor_id", v.id))
	}

	page := v.authView()
	return c.Send(page.text, page.markup)
}

// commandPath turns "/dashboard@my_bot extra" into "/dashboard"
func commandPath(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "/"
	}
	path, _, _ := strings.Cut(fields[0], "@")
	return path
}
