package telegram

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/aroma-ai-bot/internal/domain/repository"
	"github.com/yourusername/aroma-ai-bot/internal/usecase"
)

// userMode foydalanuvchining joriy rejimi
type userMode string

const (
	modeNone       userMode = ""
	modeAI         userMode = "ai"
	modeNoteSearch userMode = "notes"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	chatUseCase    usecase.ChatUseCase
	catalogUseCase *usecase.CatalogUseCase
	noteRepo       repository.NoteRepository
	chatStore      ChatStore
	quota          *dailyQuota

	adminPassword     string
	broadcastChatID   int64
	broadcastThreadID int

	modeMu sync.RWMutex
	modes  map[int64]userMode

	// /reload paroli kutilayotgan userlar
	awaitMu          sync.RWMutex
	awaitingPassword map[int64]bool
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	adminPassword string,
	dailyQuotaLimit int,
	broadcastChatID int64,
	broadcastThreadID int,
	chatUseCase usecase.ChatUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	noteRepo repository.NoteRepository,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	chatStore, err := newChatStoreFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to init chat store: %w", err)
	}

	return &BotHandler{
		bot:               bot,
		chatUseCase:       chatUseCase,
		catalogUseCase:    catalogUseCase,
		noteRepo:          noteRepo,
		chatStore:         chatStore,
		quota:             newDailyQuota(dailyQuotaLimit),
		adminPassword:     adminPassword,
		broadcastChatID:   broadcastChatID,
		broadcastThreadID: broadcastThreadID,
		modes:             make(map[int64]userMode),
		awaitingPassword:  make(map[int64]bool),
	}, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

func (h *BotHandler) setMode(userID int64, mode userMode) {
	h.modeMu.Lock()
	defer h.modeMu.Unlock()
	if mode == modeNone {
		delete(h.modes, userID)
		return
	}
	h.modes[userID] = mode
}

func (h *BotHandler) getMode(userID int64) userMode {
	h.modeMu.RLock()
	defer h.modeMu.RUnlock()
	return h.modes[userID]
}

func (h *BotHandler) setAwaitingPassword(userID int64, awaiting bool) {
	h.awaitMu.Lock()
	defer h.awaitMu.Unlock()
	if !awaiting {
		delete(h.awaitingPassword, userID)
		return
	}
	h.awaitingPassword[userID] = true
}

func (h *BotHandler) isAwaitingPassword(userID int64) bool {
	h.awaitMu.RLock()
	defer h.awaitMu.RUnlock()
	return h.awaitingPassword[userID]
}
