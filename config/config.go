package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
)

// DefaultSheetURL jadvalning XLSX export manzili (env bilan almashtiriladi)
const DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1toUlvvMpZJZjrFYNSVZ4iGh7LBc0noAl/export?format=xlsx"

// DefaultNotesAPIURL nota-lookup xizmatining bazaviy manzili
const DefaultNotesAPIURL = "https://api.alexander-dev.ru/bahur/search/"

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken     string
	GeminiAPIKey      string
	AdminPassword     string
	AllowEmptySecrets bool

	SheetURL    string
	NotesAPIURL string

	MaxContextSize int
	DailyQuota     int

	// Haftalik leaderboard yuboriladigan chat ("-100.../threadID" formatda)
	BroadcastChatID   int64
	BroadcastThreadID int

	// Ustun pozitsiyalarini env orqali almashtirish (jadval revisiyasi
	// o'zgarganda kod o'zgartirmasdan moslashish uchun).
	// Kalit - maydon nomi (brand, aroma, ...), qiymat - 0-based ustun.
	ColumnOverrides map[string]int
}

func parseChatTarget(raw string) (int64, int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, nil
	}
	// Inline kommentariyalarni qo'llab-quvvatlash: "-100.../4  # izoh"
	if idx := strings.Index(raw, "#"); idx >= 0 {
		raw = strings.TrimSpace(raw[:idx])
	}
	parts := strings.Split(raw, "/")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("noto'g'ri format, misol: -1001234567890 yoki -1001234567890/2")
	}

	chatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	if chatID > 0 {
		// Supergroup/kanallarda manfiy bo'lishi kerak, shuning uchun avtomatik tuzatamiz
		chatID = -chatID
	}

	threadID := 0
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		tid, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("topic ID noto'g'ri: %v", err)
		}
		if tid < 0 {
			tid = -tid
		}
		threadID = tid
	}

	return chatID, threadID, nil
}

// columnOverrideEnvKeys maydon nomi -> env o'zgaruvchisi
var columnOverrideEnvKeys = map[string]string{
	"gender":          "SHEET_COLUMN_GENDER",
	"brand":           "SHEET_COLUMN_BRAND",
	"aroma":           "SHEET_COLUMN_AROMA",
	"quality":         "SHEET_COLUMN_QUALITY",
	"factory":         "SHEET_COLUMN_FACTORY",
	"price_30":        "SHEET_COLUMN_PRICE_30",
	"price_50":        "SHEET_COLUMN_PRICE_50",
	"price_500":       "SHEET_COLUMN_PRICE_500",
	"price_1kg":       "SHEET_COLUMN_PRICE_1KG",
	"country":         "SHEET_COLUMN_COUNTRY",
	"notes_top":       "SHEET_COLUMN_NOTES_TOP",
	"notes_mid":       "SHEET_COLUMN_NOTES_MID",
	"notes_base":      "SHEET_COLUMN_NOTES_BASE",
	"link":            "SHEET_COLUMN_LINK",
	"popularity_last": "SHEET_COLUMN_POPULARITY_LAST",
	"popularity_all":  "SHEET_COLUMN_POPULARITY_ALL",
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
		SheetURL:          getEnvString("SHEET_URL", DefaultSheetURL),
		NotesAPIURL:       getEnvString("NOTES_API_URL", DefaultNotesAPIURL),
		MaxContextSize:    constants.DefaultMaxContextSize,
		DailyQuota:        getEnvInt("DAILY_QUOTA", constants.DefaultDailyQuota),
		ColumnOverrides:   make(map[string]int),
	}

	if rawTarget := os.Getenv("BROADCAST_CHAT_ID"); rawTarget != "" {
		chatID, threadID, err := parseChatTarget(rawTarget)
		if err != nil {
			return nil, fmt.Errorf("BROADCAST_CHAT_ID noto'g'ri formatda: %v", err)
		}
		config.BroadcastChatID = chatID
		config.BroadcastThreadID = threadID
	}

	for field, envKey := range columnOverrideEnvKeys {
		raw := strings.TrimSpace(os.Getenv(envKey))
		if raw == "" {
			continue
		}
		col, err := strconv.Atoi(raw)
		if err != nil || col < 0 {
			return nil, fmt.Errorf("%s noto'g'ri ustun indeksi: %q", envKey, raw)
		}
		config.ColumnOverrides[field] = col
	}

	// Validatsiya
	if !config.AllowEmptySecrets {
		if config.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
		}
		if config.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable bo'sh")
		}
		if config.AdminPassword == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD environment variable bo'sh")
		}
	}
	if config.DailyQuota <= 0 {
		config.DailyQuota = constants.DefaultDailyQuota
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
