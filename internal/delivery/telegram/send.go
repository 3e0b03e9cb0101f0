package telegram

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendText sends a message with optional parseMode/replyMarkup and supports forum topics via threadOverride.
func (h *BotHandler) sendText(chatID int64, text string, parseMode string, replyMarkup interface{}, threadOverride int) (*tgbotapi.Message, error) {
	if h.bot == nil {
		return nil, fmt.Errorf("telegram bot is nil")
	}

	threadID := threadOverride
	if threadID == 0 && chatID == h.broadcastChatID {
		threadID = h.broadcastThreadID
	}

	if threadID > 0 {
		params := make(tgbotapi.Params)
		params.AddNonZero64("chat_id", chatID)
		params.AddNonZero("message_thread_id", threadID)
		params.AddNonEmpty("text", text)
		params.AddNonEmpty("parse_mode", parseMode)
		if replyMarkup != nil {
			if err := params.AddInterface("reply_markup", replyMarkup); err != nil {
				return nil, err
			}
		}
		resp, err := h.bot.MakeRequest("sendMessage", params)
		if err != nil {
			return nil, err
		}
		var msg tgbotapi.Message
		if err := json.Unmarshal(resp.Result, &msg); err != nil {
			return nil, err
		}
		return &msg, nil
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if replyMarkup != nil {
		msg.ReplyMarkup = replyMarkup
	}
	sent, err := h.bot.Send(msg)
	if err != nil {
		return nil, err
	}
	return &sent, nil
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️ Bo'sh xabar yuborilmoqchi bo'ldi! ChatID: %d", chatID)
		return
	}

	for _, chunk := range splitIntoChunks(text, 4096) {
		if _, err := h.sendText(chatID, chunk, "", nil, 0); err != nil {
			log.Printf("Xabar yuborishda xatolik: %v", err)
			return
		}
	}
}

// sendHTML HTML formatda xabar yuborish. Telegram yomon HTML ni rad
// etsa xabar oddiy matn sifatida qayta yuboriladi.
func (h *BotHandler) sendHTML(chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️ Bo'sh xabar yuborilmoqchi bo'ldi! ChatID: %d", chatID)
		return
	}

	for _, chunk := range splitIntoChunks(text, 4096) {
		if _, err := h.sendText(chatID, chunk, tgbotapi.ModeHTML, nil, 0); err != nil {
			log.Printf("HTML xabar o'tmadi, oddiy matn bilan qayta: %v", err)
			if _, err := h.sendText(chatID, chunk, "", nil, 0); err != nil {
				log.Printf("Xabar yuborishda xatolik: %v", err)
				return
			}
		}
	}
}

// sendHTMLWithMarkup HTML xabar + inline keyboard
func (h *BotHandler) sendHTMLWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	if _, err := h.sendText(chatID, text, tgbotapi.ModeHTML, markup, 0); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// splitIntoChunks matnni Telegram limitiga mos bo'lib yuborish uchun bo'ladi
func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 {
		return []string{s}
	}
	var chunks []string
	var current strings.Builder

	for _, r := range s {
		current.WriteRune(r)
		if current.Len() >= limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
