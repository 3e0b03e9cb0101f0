package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yourusername/aroma-ai-bot/config"
	"github.com/yourusername/aroma-ai-bot/internal/delivery/telegram"
	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/bahur"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/gemini"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/parser"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/sheets"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/storage"
	"github.com/yourusername/aroma-ai-bot/internal/usecase"
	"github.com/yourusername/aroma-ai-bot/pkg/logger"
)

func main() {
	initDefaultTimezone()

	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if cfg.AllowEmptySecrets {
		if strings.TrimSpace(cfg.AdminPassword) == "" {
			cfg.AdminPassword = generateTempSecret(16)
			logger.InfoLogger.Printf("ADMIN_PASSWORD bo'sh. Vaqtinchalik parol: %s", cfg.AdminPassword)
		}

		missing := []string{}
		if isEmptyOrDisabled(cfg.TelegramToken) {
			missing = append(missing, "TELEGRAM_BOT_TOKEN")
		}
		if isEmptyOrDisabled(cfg.GeminiAPIKey) {
			missing = append(missing, "GEMINI_API_KEY")
		}
		if len(missing) > 0 {
			logger.InfoLogger.Printf("Secretlar yetishmayapti (%s). Bot vaqtincha ishga tushmaydi.", strings.Join(missing, ", "))
			<-sigChan
			return
		}
	}

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Gemini AI client
	aiRepo, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("❌ Gemini client yaratilmadi: %v", err)
	}
	defer aiRepo.Close()
	logger.InfoLogger.Printf("✅ Gemini AI client tayyor (%s)", constants.GeminiModelName)

	// 2. Nota qidiruv API
	noteRepo := bahur.NewClient(cfg.NotesAPIURL)
	logger.InfoLogger.Println("✅ Nota qidiruv client tayyor")

	// 3. Jadval client + qator normalizer
	mapping := parser.DefaultColumnMapping().ApplyOverrides(cfg.ColumnOverrides)
	sheetClient := sheets.NewClient(cfg.SheetURL, mapping.Hyperlink)
	normalizer := parser.NewRowNormalizer(mapping, noteRepo, constants.EnrichTimeout*time.Second)
	logger.InfoLogger.Println("✅ Jadval client tayyor")

	// 4. Repositories (in-memory)
	catalogRepo := storage.NewMemoryCatalogRepository()
	chatRepo := storage.NewMemoryChatRepository(cfg.MaxContextSize)
	logger.InfoLogger.Println("✅ Repositories tayyor (in-memory)")

	// 5. Use cases
	catalogUseCase := usecase.NewCatalogUseCase(sheetClient, mapping, normalizer, catalogRepo)
	chatUseCase := usecase.NewChatUseCase(aiRepo, chatRepo, catalogUseCase, usecase.RenderOptions{})
	logger.InfoLogger.Println("✅ Use cases tayyor")

	// Context yaratish
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dastlabki katalogni yuklash. Xato botni to'xtatmaydi - katalog
	// keyinroq /reload bilan yuklanishi mumkin.
	if _, err := catalogUseCase.Reload(ctx); err != nil {
		logger.ErrorLogger.Printf("⚠️ Dastlabki katalog yuklanmadi: %v", err)
	}

	// 6. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		cfg.AdminPassword,
		cfg.DailyQuota,
		cfg.BroadcastChatID,
		cfg.BroadcastThreadID,
		chatUseCase,
		catalogUseCase,
		noteRepo,
	)
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot tayyor: @%s", botHandler.GetBotUsername())

	// Botni alohida goroutine da ishga tushirish
	go func() {
		if err := botHandler.Start(ctx); err != nil {
			logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")

	// Signal kutish
	<-sigChan
	logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")

	// Graceful shutdown
	cancel()
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}

func initDefaultTimezone() {
	const tzName = "Europe/Moscow"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 3*60*60)
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}

func generateTempSecret(byteLen int) string {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "change-me"
	}
	return hex.EncodeToString(buf)
}
