package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// VisitorLoader loads a chat's visitor state before it is handled
type VisitorLoader interface {
	EnsureVisitor(chatID int64) error
}

// VisitorMiddleware restores the chat's session before any handler runs.
// Updates without a chat are dropped.
func VisitorMiddleware(loader VisitorLoader, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return nil
			}

			// Restore session; while it fails no page can be shown
			if err := loader.EnsureVisitor(chat.ID); err != nil {
				logger.Error("Failed to restore visitor in middleware",
					zap.Error(err),
					zap.Int64("visitor_id", chat.ID),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: errorText, ShowAlert: true})
				}
				return c.Send(errorText)
			}

			return next(c)
		}
	}
}

const errorText = "خطایی رخ داد. لطفاً بعداً دوباره تلاش کنید."
