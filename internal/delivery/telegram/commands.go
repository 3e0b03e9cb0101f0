package telegram

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/aroma-ai-bot/internal/usecase"
)

const startMessage = `<b>Здравствуйте!

Я — ваш ароматный помощник от BAHUR.
🍓 Ищу ноты и 🧸 отвечаю на вопросы с любовью. ❤</b>`

// aiGreetings rejimga kirganda tasodifiy salomlashuv
var aiGreetings = []string{
	"Привет-привет! 🐾 Готов раскрыть все секреты продаж — спрашивай смело!",
	"Эй, друг! 🌟 Ai-Медвежонок на связи — давай обсудим твои вопросы за виртуальным мёдом!",
	"Мягкий привет! 🧸✨ Хочешь, расскажу, как продавать лучше, чем медведь в лесу малину?",
	"Здравствуй, человек! 🌟 Готов устроить мозговой штурм? Задавай вопрос — я в деле!",
	"Приветик из цифровой берлоги! 🐻‍❄️💻 Чем могу помочь? (Совет: спроси что-нибудь классное!)",
	"Алло-алло! 📞 Ты дозвонился до самого продающего медведя в сети. Вопросы — в студию!",
	"Хей-хей! 🎯 Готов к диалогу, как пчела к мёду. Запускай свой запрос!",
	"Тыдыщь! 🎩✨ Ai-Медвежонок-волшебник приветствует тебя. Какой вопрос спрятан у тебя в рукаве?",
	"Привет, землянин! 👽🐻 (Шучу, я просто AI). Давай общаться — спрашивай что угодно!",
}

// mainMenu asosiy inline menyu
func mainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧸 Ai-Медвежонок", "ai"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🍦 Прайс", "https://drive.google.com/file/d/1J70LlZwh6g7JOryDG2br-weQrYfv6zTc/view?usp=sharing"),
			tgbotapi.NewInlineKeyboardButtonURL("🍿 Магазин", "https://www.bahur.store/m/"),
			tgbotapi.NewInlineKeyboardButtonURL("♾️ Вопросы", "https://vk.com/@bahur_store-optovye-praisy-ot-bahur"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🎮 Чат", "https://t.me/+VYDZEvbp1pce4KeT"),
			tgbotapi.NewInlineKeyboardButtonURL("💎 Статьи", "https://vk.com/bahur_store?w=app6326142_-133936126%2523w%253Dapp6326142_-133936126"),
			tgbotapi.NewInlineKeyboardButtonURL("🏆 Отзывы", "https://vk.com/@bahur_store"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍓 Ноты", "instruction"),
		),
	)
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}
	userID := message.From.ID
	cmd := extractCommand(message)
	if cmd == "" {
		h.sendMessage(message.Chat.ID, "Неизвестная команда. /help — список команд.")
		return
	}

	switch cmd {
	case "start":
		h.setMode(userID, modeNone)
		h.sendHTMLWithMarkup(message.Chat.ID, startMessage, mainMenu())
	case "help":
		h.sendMessage(message.Chat.ID, helpMessage())
	case "clear":
		h.handleClearCommand(ctx, message)
	case "top":
		h.handleTopCommand(ctx, message)
	case "reload":
		h.handleReloadCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Неизвестная команда. /help — список команд.")
	}
}

func helpMessage() string {
	return `🧸 Я помогаю подобрать аромат и рассчитать цену.

Команды:
/start — главное меню
/top — самые популярные ароматы
/clear — очистить историю диалога
/help — эта справка

Нажмите 🧸 Ai-Медвежонок в меню и просто спросите — например:
«сколько стоит 300 грамм Tobacco Vanille?»`
}

func (h *BotHandler) handleClearCommand(ctx context.Context, message *tgbotapi.Message) {
	if err := h.chatUseCase.ClearHistory(ctx, message.From.ID); err != nil {
		log.Printf("❌ Tarix tozalanmadi (user %d): %v", message.From.ID, err)
		h.sendMessage(message.Chat.ID, "Не получилось очистить историю, попробуйте ещё раз.")
		return
	}
	h.sendMessage(message.Chat.ID, "История очищена! Начнём с чистого листа 🧸")
}

// handleTopCommand joriy katalogning mashhurlik reytingini yuborish
func (h *BotHandler) handleTopCommand(ctx context.Context, message *tgbotapi.Message) {
	entries, err := h.catalogUseCase.TopByPopularity(ctx, usecase.MetricPopularityLast)
	if err != nil || len(entries) == 0 {
		h.sendMessage(message.Chat.ID, "Прайс ещё загружается, попробуйте через минуту 🧸")
		return
	}
	h.sendMessage(message.Chat.ID, formatLeaderboard(entries, 10))
}

// handleReloadCommand katalogni qayta yuklash. Parol /reload argumenti
// sifatida yoki keyingi xabarda kiritiladi.
func (h *BotHandler) handleReloadCommand(ctx context.Context, message *tgbotapi.Message) {
	if h.adminPassword == "" {
		h.sendMessage(message.Chat.ID, "Перезагрузка прайса отключена.")
		return
	}

	arg := strings.TrimSpace(message.CommandArguments())
	if arg == "" {
		h.setAwaitingPassword(message.From.ID, true)
		h.sendMessage(message.Chat.ID, "Введите пароль администратора:")
		return
	}
	h.runReload(ctx, message.Chat.ID, arg)
}

// handlePasswordInput /reload dan keyingi parol xabari
func (h *BotHandler) handlePasswordInput(ctx context.Context, message *tgbotapi.Message) {
	h.setAwaitingPassword(message.From.ID, false)
	h.runReload(ctx, message.Chat.ID, strings.TrimSpace(message.Text))
}

func (h *BotHandler) runReload(ctx context.Context, chatID int64, password string) {
	if password != h.adminPassword {
		h.sendMessage(chatID, "Неверный пароль ⛔")
		return
	}

	h.sendMessage(chatID, "🔄 Обновляю прайс, это займёт немного времени...")
	report, err := h.catalogUseCase.Reload(ctx)
	if err != nil {
		log.Printf("❌ Reload komandasi xato: %v", err)
		h.sendMessage(chatID, fmt.Sprintf("Не получилось обновить прайс: %v", err))
		return
	}
	h.sendMessage(chatID, fmt.Sprintf(
		"✅ Прайс обновлён!\nПозиций: %d из %d строк\nПропущено: %d\nПроблемных полей: %d",
		report.Loaded, report.TotalRows, report.Discarded, report.FieldIssues))
}

func randomGreeting() string {
	return aiGreetings[rand.Intn(len(aiGreetings))]
}

// extractCommand komandani va undagi bot mentionini ajratib olish
func extractCommand(message *tgbotapi.Message) string {
	if message.IsCommand() {
		return strings.ToLower(message.Command())
	}
	text := strings.TrimSpace(message.Text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	text = strings.TrimPrefix(text, "/")
	if idx := strings.IndexAny(text, " @"); idx >= 0 {
		text = text[:idx]
	}
	return strings.ToLower(text)
}
