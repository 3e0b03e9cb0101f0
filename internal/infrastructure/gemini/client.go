package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient yangi Gemini AI client yaratish
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)

	// Model konfiguratsiyasi - aniq javoblar uchun
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(salesAssistantInstruction),
		},
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateResponse katalog konteksti va chat tarixi bilan javob yaratish.
// catalogContext - foydalanuvchi savoliga mos mahsulotlardan yig'ilgan
// matn bloki; AI faqat shu blokdagi ma'lumotlarga tayanishi kerak.
func (g *geminiClient) GenerateResponse(ctx context.Context, userID int64, message, catalogContext string, history []entity.Message) (string, error) {
	var parts []genai.Part

	if strings.TrimSpace(catalogContext) != "" {
		parts = append(parts, genai.Text(catalogContext))
	}

	// Oldingi xabarlarni qo'shish (kontekst)
	for _, msg := range history {
		if msg.Text != "" {
			parts = append(parts, genai.Text(fmt.Sprintf("Пользователь: %s", msg.Text)))
		}
		if msg.Response != "" {
			parts = append(parts, genai.Text(fmt.Sprintf("Ты: %s", msg.Response)))
		}
	}

	parts = append(parts, genai.Text(message))

	// Retry logic
	maxRetries := constants.MaxRetries
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("🔄 Gemini API ga so'rov yuborish (user %d, urinish %d/%d)...", userID, attempt, maxRetries)

		resp, err := g.model.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			log.Printf("❌ Urinish %d xato: %v", attempt, err)
			if !g.waitRetry(ctx, attempt, maxRetries) {
				if ctx.Err() != nil {
					return "", ctx.Err()
				}
			}
			continue
		}

		if len(resp.Candidates) == 0 {
			lastErr = fmt.Errorf("no response candidates")
			log.Printf("⚠️ Urinish %d: Javob kandidatlari yo'q", attempt)
			if !g.waitRetry(ctx, attempt, maxRetries) {
				if ctx.Err() != nil {
					return "", ctx.Err()
				}
			}
			continue
		}

		// Safety ratings tekshirish
		if resp.Candidates[0].FinishReason != 0 {
			log.Printf("⚠️ Gemini FinishReason: %v", resp.Candidates[0].FinishReason)
			if resp.Candidates[0].FinishReason == 3 { // SAFETY
				log.Printf("🚫 Response blocked by safety filter!")
				return "Извините, не получилось ответить на этот вопрос. Попробуйте сформулировать его иначе 🧸", nil
			}
		}

		responseText := extractText(resp)

		if strings.TrimSpace(responseText) == "" {
			log.Printf("⚠️ Urinish %d: Bo'sh javob qaytdi", attempt)
			lastErr = fmt.Errorf("empty response")
			if !g.waitRetry(ctx, attempt, maxRetries) {
				if ctx.Err() != nil {
					return "", ctx.Err()
				}
			}
			continue
		}

		log.Printf("✅ Javob muvaffaqiyatli olindi (urinish %d)", attempt)
		return responseText, nil
	}

	log.Printf("❌ Barcha %d urinish muvaffaqiyatsiz tugadi", maxRetries)
	if lastErr != nil {
		return "", fmt.Errorf("AI javob berishda xatolik yuz berdi (%d urinishdan keyin): %w", maxRetries, lastErr)
	}
	return "", fmt.Errorf("AI dan javob olinmadi (%d urinishdan keyin)", maxRetries)
}

// waitRetry keyingi urinishdan oldin kutish. false - kutish bo'lmadi
// (oxirgi urinish yoki context bekor qilindi).
func (g *geminiClient) waitRetry(ctx context.Context, attempt, maxRetries int) bool {
	if attempt >= maxRetries {
		return false
	}
	waitDuration := constants.RetryDelay * time.Second
	log.Printf("⏳ %v kutib qayta urinish...", waitDuration)
	select {
	case <-ctx.Done():
		return false
	case <-time.After(waitDuration):
		return true
	}
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	return g.client.Close()
}
