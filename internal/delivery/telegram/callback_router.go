package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback query larini qayta ishlash
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	// Callback ga javob (spinnerni to'xtatish)
	callback := tgbotapi.NewCallback(cq.ID, "")
	if _, err := h.bot.Request(callback); err != nil {
		log.Printf("Callback javobida xatolik: %v", err)
	}

	switch cq.Data {
	case "ai":
		h.setMode(userID, modeAI)
		h.sendMessage(chatID, randomGreeting())
	case "instruction":
		h.setMode(userID, modeNoteSearch)
		h.sendMessage(chatID, "🍉 Напиши любую ноту (например, апельсин, клубника) — я найду ароматы с этой нотой!")
	case "note_again":
		h.setMode(userID, modeNoteSearch)
		h.sendMessage(chatID, "🍓 Напиши следующую ноту — поищем ещё!")
	default:
		log.Printf("⚠️ Noma'lum callback: %q (user %d)", cq.Data, userID)
	}
}
