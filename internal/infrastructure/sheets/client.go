package sheets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/aroma-ai-bot/internal/domain/constants"
)

const maxSheetBytes = 20 << 20 // 20MB

// RawRow jadvalning bitta ma'lumot qatori
type RawRow struct {
	// Index ma'lumot qatorlari ichidagi 0-based pozitsiya (sarlavhalardan keyin)
	Index int

	// Cells ustun qiymatlari (excelize trailing bo'sh cellarni kesadi)
	Cells []string

	// Hyperlink qatorning havola ustuniga biriktirilgan structured
	// hyperlink, bo'lsa
	Hyperlink string
}

// Client jadvalning XLSX exportini yuklab olib, raw qatorlar + sarlavha
// yorliqlarini qaytaradi. Sarlavha qatorlari (banner, bo'sh qator, ustun
// nomlari, sub-header) tashlab yuboriladi.
type Client struct {
	url        string
	linkColumn int
	httpClient *http.Client
}

// NewClient yangi jadval client yaratish. linkColumn - structured
// hyperlink qidiriladigan ustun (0-based).
func NewClient(url string, linkColumn int) *Client {
	return &Client{
		url:        url,
		linkColumn: linkColumn,
		httpClient: &http.Client{
			Timeout: constants.FetchTimeout * time.Second,
		},
	}
}

// FetchRows jadvalni yuklab olish. Qaytaradi: ustun nomlari qatori
// (mapping validatsiyasi uchun) va ma'lumot qatorlari asl tartibda.
func (c *Client) FetchRows(ctx context.Context) ([]string, []RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("sheet request yaratilmadi: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("sheet yuklab olinmadi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("sheet export status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSheetBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("sheet body o'qilmadi: %w", err)
	}

	return c.parseWorkbook(data)
}

func (c *Client) parseWorkbook(data []byte) ([]string, []RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("XLSX ochilmadi: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("⚠️ XLSX yopishda xatolik: %v", closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("XLSX da varaqlar yo'q")
	}
	sheetName := sheets[0]

	allRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("qatorlar o'qilmadi: %w", err)
	}
	if len(allRows) <= constants.HeaderRowCount {
		return nil, nil, fmt.Errorf("jadvalda ma'lumot qatorlari yo'q (%d qator)", len(allRows))
	}

	// Ustun nomlari qatori - sarlavha blokining uchinchi qatori
	var header []string
	if len(allRows) > 2 {
		header = allRows[2]
	}

	rows := make([]RawRow, 0, len(allRows)-constants.HeaderRowCount)
	for i := constants.HeaderRowCount; i < len(allRows); i++ {
		row := RawRow{
			Index: len(rows),
			Cells: allRows[i],
		}
		row.Hyperlink = c.hyperlinkAt(f, sheetName, i, c.linkColumn)
		rows = append(rows, row)
	}

	log.Printf("📥 Jadval yuklandi: %d ma'lumot qatori", len(rows))
	return header, rows, nil
}

func (c *Client) hyperlinkAt(f *excelize.File, sheetName string, rowIdx, colIdx int) string {
	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return ""
	}
	ok, link, err := f.GetCellHyperLink(sheetName, cell)
	if err != nil || !ok {
		return ""
	}
	return link
}
