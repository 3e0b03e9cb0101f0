package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/usecase"
)

// runWeeklyBroadcast har hafta mashhurlik reytingini guruhga yuborish
func (h *BotHandler) runWeeklyBroadcast(ctx context.Context) {
	interval := constants.BroadcastIntervalHours * time.Hour
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("📣 Haftalik broadcast yoqildi: chat %d, interval %v", h.broadcastChatID, interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.sendPopularityBroadcast(ctx)
		}
	}
}

func (h *BotHandler) sendPopularityBroadcast(ctx context.Context) {
	runID := uuid.NewString()
	entries, err := h.catalogUseCase.TopByPopularity(ctx, usecase.MetricPopularityLast)
	if err != nil || len(entries) == 0 {
		log.Printf("⚠️ Broadcast %s: reyting olinmadi: %v", runID, err)
		return
	}

	text := "🔥 Хиты недели по версии BAHUR:\n\n" + formatLeaderboard(entries, constants.DefaultLeaderboardSize)
	if _, err := h.sendText(h.broadcastChatID, text, "", nil, h.broadcastThreadID); err != nil {
		log.Printf("❌ Broadcast %s yuborilmadi: %v", runID, err)
		return
	}
	log.Printf("✅ Haftalik broadcast %s yuborildi (chat %d)", runID, h.broadcastChatID)
}

// formatLeaderboard reytingni xabar matniga aylantirish. Mashhurlik
// qiymati yo'q pozitsiyalar ro'yxatga kirmaydi.
func formatLeaderboard(entries []entity.RankedEntry, size int) string {
	var b strings.Builder
	count := 0
	for _, e := range entries {
		if e.Variant.PopularityLast == nil {
			break
		}
		count++
		fmt.Fprintf(&b, "%d. %s — %.1f%%\n", e.Rank, e.Variant.DisplayName(), e.Value)
		if count >= size {
			break
		}
	}
	if count == 0 {
		return "Пока нет данных о популярности 🧸"
	}
	return b.String()
}
