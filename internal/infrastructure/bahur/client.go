package bahur

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yourusername/aroma-ai-bot/internal/domain/entity"
	"github.com/yourusername/aroma-ai-bot/internal/domain/repository"
)

const maxResponseBytes = 1 << 20 // 1MB

// SearchResult nota-lookup API ning to'liq javobi
type SearchResult struct {
	Status      string `json:"status"`
	ID          int64  `json:"ID"`
	Brand       string `json:"brand"`
	Aroma       string `json:"aroma"`
	Description string `json:"description"`
	URL         string `json:"url"`
	TopNotes    string `json:"top_notes"`
	MidNotes    string `json:"middle_notes"`
	BaseNotes   string `json:"base_notes"`
	Country     string `json:"country"`
}

// Client nota-lookup xizmatining HTTP clienti. Xizmat javob bermasa
// yoki hech narsa topmasa bu "enrichment yo'q" - hech qachon fatal emas.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient yangi nota-lookup client yaratish
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "?"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ repository.NoteRepository = (*Client)(nil)

// Search matn bo'yicha qidiruv. Topilmasa (nil, nil).
func (c *Client) Search(ctx context.Context, text string) (*SearchResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s?text=%s", c.baseURL, url.QueryEscape(text))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	if result.Status != "success" {
		return nil, nil
	}
	return &result, nil
}

// Lookup NoteRepository implementatsiyasi: mahsulot nomi bo'yicha
// enrichment ma'lumotlari. Topilmasa (nil, nil).
func (c *Client) Lookup(ctx context.Context, productName string) (*entity.NoteInfo, error) {
	result, err := c.Search(ctx, productName)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	info := &entity.NoteInfo{
		TopNotes:  strings.TrimSpace(result.TopNotes),
		MidNotes:  strings.TrimSpace(result.MidNotes),
		BaseNotes: strings.TrimSpace(result.BaseNotes),
		Country:   strings.TrimSpace(result.Country),
		Link:      strings.TrimSpace(result.URL),
	}
	// Ayrim revisiyalarda notalar alohida maydonlarda emas, bitta
	// description matnida keladi
	if info.TopNotes == "" && info.MidNotes == "" && info.BaseNotes == "" {
		info.TopNotes = strings.TrimSpace(result.Description)
	}
	return info, nil
}
