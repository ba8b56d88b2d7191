package handler

import (
	"fmt"
	"sync"
	"time"

	"phonegate/internal/domain"
	"phonegate/internal/repository"
	"phonegate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender delivers and edits messages; *tele.Bot implements it
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	sender       Sender
	storage      repository.KeyValueStore
	fetcher      repository.ProfileFetcher
	profiles     *service.ProfileService
	fetchTimeout time.Duration
	logger       *zap.Logger

	// One visitor per chat, restored from storage on first use
	visitors   map[int64]*Visitor
	visitorMux sync.Mutex
	now        func() time.Time
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	storage repository.KeyValueStore,
	fetcher repository.ProfileFetcher,
	profiles *service.ProfileService,
	fetchTimeout time.Duration,
	logger *zap.Logger,
) *Handler {
	h := newHandler(bot, storage, fetcher, profiles, fetchTimeout, logger)
	h.bot = bot
	return h
}

func newHandler(
	sender Sender,
	storage repository.KeyValueStore,
	fetcher repository.ProfileFetcher,
	profiles *service.ProfileService,
	fetchTimeout time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sender:       sender,
		storage:      storage,
		fetcher:      fetcher,
		profiles:     profiles,
		fetchTimeout: fetchTimeout,
		logger:       logger,
		visitors:     make(map[int64]*Visitor),
		now:          time.Now,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands are routes
	h.bot.Handle("/start", h.handleOpen(domain.RouteRoot))
	h.bot.Handle("/auth", h.handleOpen(domain.RouteAuth))
	h.bot.Handle("/dashboard", h.handleOpen(domain.RouteDashboard))
	h.bot.Handle("/about", h.handleOpen(domain.RouteAbout))
	h.bot.Handle("/logout", h.handleLogout)

	// Text and shared contacts are pasted into the phone field
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnContact, h.handleContact)

	// Inline buttons
	h.bot.Handle(&btnKey, h.handleKey)
	h.bot.Handle(&btnClear, h.handleClear)
	h.bot.Handle(&btnSubmit, h.handleSubmit)
	h.bot.Handle(&btnLogout, h.handleLogout)

	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// EnsureVisitor loads the chat's visitor, restoring its session from storage if needed
func (h *Handler) EnsureVisitor(chatID int64) error {
	_, err := h.visitor(chatID)
	return err
}

func (h *Handler) visitor(chatID int64) (*Visitor, error) {
	h.visitorMux.Lock()
	defer h.visitorMux.Unlock()

	if v, ok := h.visitors[chatID]; ok {
		v.lastSeen = h.now()
		return v, nil
	}

	v, err := newVisitor(h, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load visitor %d: %w", chatID, err)
	}
	v.lastSeen = h.now()
	h.visitors[chatID] = v

	h.logger.Info("Visitor loaded", zap.Int64("visitor_id", chatID))
	return v, nil
}

// EvictIdle drops visitors not seen for ttl; they are restored from storage on their next update
func (h *Handler) EvictIdle(ttl time.Duration) int {
	h.visitorMux.Lock()
	defer h.visitorMux.Unlock()

	cutoff := h.now().Add(-ttl)
	evicted := 0
	for id, v := range h.visitors {
		if v.lastSeen.Before(cutoff) {
			v.close()
			delete(h.visitors, id)
			evicted++
		}
	}

	return evicted
}

// Inline keyboard buttons
var (
	btnKey = tele.Btn{
		Unique: "key",
	}
	btnClear = tele.Btn{
		Unique: "clear",
		Text:   "🔄",
	}
	btnSubmit = tele.Btn{
		Unique: "submit",
		Text:   "ارسال",
	}
	btnLogout = tele.Btn{
		Unique: "logout",
		Text:   "خروج",
	}
)

// Keypad layout; each button carries its key name as callback data
var keypadRows = [][]struct{ label, key string }{
	{{"1", "1"}, {"2", "2"}, {"3", "3"}},
	{{"4", "4"}, {"5", "5"}, {"6", "6"}},
	{{"7", "7"}, {"8", "8"}, {"9", "9"}},
	{{"+", "+"}, {"0", "0"}, {"⌫", service.KeyBackspace}},
	{{"◀", service.KeyArrowLeft}, {"▶", service.KeyArrowRight}, {"⌦", service.KeyDelete}, {"↵", service.KeyEnter}},
}

const genericErrorText = "خطایی رخ داد. لطفاً بعداً دوباره تلاش کنید."
