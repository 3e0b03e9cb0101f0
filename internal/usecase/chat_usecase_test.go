package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/infrastructure/sheets"
)

type stubAIRepo struct {
	resp        string
	err         error
	called      bool
	lastMessage string
	lastContext string
	lastHistory []entity.Message
}

func (s *stubAIRepo) GenerateResponse(_ context.Context, _ int64, message, catalogContext string, history []entity.Message) (string, error) {
	s.called = true
	s.lastMessage = message
	s.lastContext = catalogContext
	s.lastHistory = history
	return s.resp, s.err
}

func (s *stubAIRepo) Close() error { return nil }

type stubChatRepo struct {
	history []entity.Message
	saved   []entity.Message
}

func (s *stubChatRepo) SaveMessage(_ context.Context, message entity.Message) error {
	s.saved = append(s.saved, message)
	return nil
}

func (s *stubChatRepo) GetHistory(_ context.Context, _ int64, limit int) ([]entity.Message, error) {
	if limit <= 0 || len(s.history) <= limit {
		return s.history, nil
	}
	return s.history[len(s.history)-limit:], nil
}

func (s *stubChatRepo) ClearHistory(_ context.Context, _ int64) error {
	s.history = nil
	return nil
}

func (s *stubChatRepo) ClearAll(_ context.Context) error {
	s.history = nil
	return nil
}

func chatTestCatalogUseCase(t *testing.T) *CatalogUseCase {
	t.Helper()
	source := &stubSheetSource{
		header: validHeader(),
		rows: []sheets.RawRow{
			sheetRow(0, "Tom Ford", "Tobacco Vanille", "6", "1200", "7.5"),
			sheetRow(1, "Creed", "Aventus", "5", "900", "3.0"),
		},
	}
	uc := newTestCatalogUseCase(source, &stubCatalogRepo{})
	if _, err := uc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	return uc
}

func TestProcessMessagePassesCatalogContext(t *testing.T) {
	aiRepo := &stubAIRepo{resp: "Конечно! Aventus стоит 900₽ за грамм 🧸"}
	chatRepo := &stubChatRepo{}
	uc := NewChatUseCase(aiRepo, chatRepo, chatTestCatalogUseCase(t), RenderOptions{})

	resp, err := uc.ProcessMessage(context.Background(), 42, "client", "сколько стоит aventus?")
	if err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if resp != aiRepo.resp {
		t.Errorf("response = %q, want %q", resp, aiRepo.resp)
	}
	if !aiRepo.called {
		t.Fatal("AI repo was not called")
	}
	if !strings.Contains(aiRepo.lastContext, "Creed Aventus") {
		t.Errorf("catalog context missing matched product:\n%s", aiRepo.lastContext)
	}
	if strings.Contains(aiRepo.lastContext, "nothing found") {
		t.Errorf("context reports empty result for a matching query:\n%s", aiRepo.lastContext)
	}
}

func TestProcessMessageEmptyResultContext(t *testing.T) {
	aiRepo := &stubAIRepo{resp: "Такого аромата у нас нет 😢"}
	uc := NewChatUseCase(aiRepo, &stubChatRepo{}, chatTestCatalogUseCase(t), RenderOptions{})

	if _, err := uc.ProcessMessage(context.Background(), 42, "client", "xyzzy"); err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if !strings.Contains(aiRepo.lastContext, "nothing found") {
		t.Errorf("context should carry the empty-result marker:\n%s", aiRepo.lastContext)
	}
}

// Savol oxiridagi tinish belgilari qidiruvni buzmasligi kerak
func TestProcessMessageIgnoresTrailingPunctuation(t *testing.T) {
	aiRepo := &stubAIRepo{resp: "ок"}
	uc := NewChatUseCase(aiRepo, &stubChatRepo{}, chatTestCatalogUseCase(t), RenderOptions{})

	if _, err := uc.ProcessMessage(context.Background(), 42, "client", "что по aventus?!"); err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if !strings.Contains(aiRepo.lastContext, "Creed Aventus") {
		t.Errorf("punctuated query found nothing:\n%s", aiRepo.lastContext)
	}
}

func TestProcessMessageSavesExchange(t *testing.T) {
	aiRepo := &stubAIRepo{resp: "ответ"}
	chatRepo := &stubChatRepo{}
	uc := NewChatUseCase(aiRepo, chatRepo, chatTestCatalogUseCase(t), RenderOptions{})

	if _, err := uc.ProcessMessage(context.Background(), 42, "client", "привет"); err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if len(chatRepo.saved) != 1 {
		t.Fatalf("saved messages = %d, want 1", len(chatRepo.saved))
	}
	msg := chatRepo.saved[0]
	if msg.UserID != 42 || msg.Text != "привет" || msg.Response != "ответ" {
		t.Errorf("saved message = %+v", msg)
	}
	if msg.ID == "" {
		t.Error("saved message has empty ID")
	}
}

func TestProcessMessageAIError(t *testing.T) {
	aiRepo := &stubAIRepo{err: fmt.Errorf("quota exceeded")}
	chatRepo := &stubChatRepo{}
	uc := NewChatUseCase(aiRepo, chatRepo, chatTestCatalogUseCase(t), RenderOptions{})

	if _, err := uc.ProcessMessage(context.Background(), 42, "client", "привет"); err == nil {
		t.Fatal("ProcessMessage() should propagate AI error")
	}
	if len(chatRepo.saved) != 0 {
		t.Errorf("failed exchange must not be saved, got %d", len(chatRepo.saved))
	}
}

func TestProcessMessageEmptyText(t *testing.T) {
	uc := NewChatUseCase(&stubAIRepo{}, &stubChatRepo{}, chatTestCatalogUseCase(t), RenderOptions{})

	if _, err := uc.ProcessMessage(context.Background(), 42, "client", "   "); err == nil {
		t.Fatal("ProcessMessage() should reject empty text")
	}
}

func TestProcessMessagePassesHistory(t *testing.T) {
	aiRepo := &stubAIRepo{resp: "ок"}
	chatRepo := &stubChatRepo{history: []entity.Message{
		{UserID: 42, Text: "первый вопрос", Response: "первый ответ"},
	}}
	uc := NewChatUseCase(aiRepo, chatRepo, chatTestCatalogUseCase(t), RenderOptions{})

	if _, err := uc.ProcessMessage(context.Background(), 42, "client", "а дальше?"); err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if len(aiRepo.lastHistory) != 1 || aiRepo.lastHistory[0].Text != "первый вопрос" {
		t.Errorf("history not passed to AI: %+v", aiRepo.lastHistory)
	}
}
