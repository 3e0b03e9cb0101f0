package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	if h.broadcastChatID != 0 {
		go h.runWeeklyBroadcast(ctx)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.CallbackQuery != nil {
				go h.handleCallback(ctx, update.CallbackQuery)
				continue
			}
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}
	// Guruh xabarlari qayta ishlanmaydi, faqat shaxsiy chat
	if !message.Chat.IsPrivate() {
		return
	}

	userID := message.From.ID
	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}

	h.logIncoming(ctx, message)

	if h.isAwaitingPassword(userID) {
		h.handlePasswordInput(ctx, message)
		return
	}
	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		h.handleCommand(ctx, message)
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	switch h.getMode(userID) {
	case modeNoteSearch:
		h.handleNoteSearch(ctx, message.Chat.ID, text)
	case modeAI:
		h.handleAIQuestion(ctx, message.Chat.ID, userID, username, text)
	default:
		// Rejim tanlanmagan - menyuni eslatamiz
		h.sendHTMLWithMarkup(message.Chat.ID, startMessage, mainMenu())
	}
}

// handleAIQuestion AI rejimidagi savol. Kunlik kvota tekshiriladi.
func (h *BotHandler) handleAIQuestion(ctx context.Context, chatID, userID int64, username, text string) {
	if !h.quota.Allow(userID) {
		h.sendMessage(chatID, "На сегодня вопросы закончились 🧸 Приходите завтра — мишка отдохнёт и ответит с новыми силами!")
		return
	}

	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := h.bot.Request(typing); err != nil {
		log.Printf("Typing action xatolik: %v", err)
	}

	response, err := h.chatUseCase.ProcessMessage(ctx, userID, username, text)
	if err != nil {
		log.Printf("❌ AI javob xatosi (user %d): %v", userID, err)
		h.sendMessage(chatID, "Что-то пошло не так 😢 Попробуйте спросить ещё раз чуть позже.")
		return
	}

	response = strings.ReplaceAll(response, "*", "")
	h.sendHTML(chatID, response)
	h.logOutgoing(ctx, chatID, userID, username, response)
}

// handleNoteSearch nota bo'yicha qidiruv rejimi
func (h *BotHandler) handleNoteSearch(ctx context.Context, chatID int64, note string) {
	info, err := h.noteRepo.Lookup(ctx, note)
	if err != nil {
		log.Printf("❌ Nota qidiruv xatosi (%q): %v", note, err)
		h.sendMessage(chatID, "Сервис поиска нот сейчас недоступен 😢 Попробуйте позже.")
		return
	}
	if info == nil {
		h.sendMessage(chatID, "Ничего не найдено по этой ноте 😢")
		return
	}

	text := fmt.Sprintf("✨ %s\n\n🍃 Верхние ноты: %s\n🌿 Средние: %s\n🪵 Базовые: %s",
		note, orDash(info.TopNotes), orDash(info.MidNotes), orDash(info.BaseNotes))

	rows := [][]tgbotapi.InlineKeyboardButton{}
	if info.Link != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🚀 Подробнее", info.Link),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("♾️ Повторить", "note_again"),
	))

	h.sendHTMLWithMarkup(chatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func (h *BotHandler) logIncoming(ctx context.Context, message *tgbotapi.Message) {
	if h.chatStore == nil {
		return
	}
	err := h.chatStore.Save(ctx, chatLogMessage{
		UserID:    message.From.ID,
		ChatID:    message.Chat.ID,
		Username:  message.From.UserName,
		Direction: "in",
		Text:      message.Text,
		MessageID: message.MessageID,
	})
	if err != nil {
		log.Printf("⚠️ Chat log saqlanmadi: %v", err)
	}
}

func (h *BotHandler) logOutgoing(ctx context.Context, chatID, userID int64, username, text string) {
	if h.chatStore == nil {
		return
	}
	err := h.chatStore.Save(ctx, chatLogMessage{
		UserID:    userID,
		ChatID:    chatID,
		Username:  username,
		Direction: "out",
		Text:      text,
	})
	if err != nil {
		log.Printf("⚠️ Chat log saqlanmadi: %v", err)
	}
}
