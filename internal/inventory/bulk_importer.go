package inventory

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bloompos-backend/internal/session"

	"github.com/xuri/excelize/v2"
)

// Toptancı fiyat listesi kolon düzeni:
// A: çiçek adı, B: birim fiyat, C: stok adedi,
// D: düşük stok eşiği (ops.), E: raf ömrü gün (ops.), F: açıklama (ops.)

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}

// ParsePriceList: .xlsx dosyasının ilk sheet'ini parti girişlerine çevirir.
// Fiyatı okunamayan satırlar atlanır; eşik ve raf ömrü boşsa upsert
// varsayılanlarına düşer.
func ParsePriceList(r io.Reader) ([]session.FlowerInput, []string, error) {
	excelFile, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("Excel dosyası okunamadı: %w", err)
	}
	defer excelFile.Close()

	sheetList := excelFile.GetSheetList()
	if len(sheetList) == 0 {
		return nil, nil, fmt.Errorf("Excel dosyasında sheet bulunamadı")
	}

	rows, err := excelFile.GetRows(sheetList[0])
	if err != nil {
		return nil, nil, fmt.Errorf("Sheet okunamadı: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("Excel dosyası boş")
	}

	// İlk satır başlık mı?
	startIndex := 0
	if len(rows[0]) > 0 {
		firstCell := strings.ToUpper(strings.TrimSpace(rows[0][0]))
		if strings.Contains(firstCell, "ÇİÇEK") || strings.Contains(firstCell, "FLOWER") ||
			strings.Contains(firstCell, "NAME") || strings.Contains(firstCell, "ÜRÜN") {
			startIndex = 1
		}
	}

	var inputs []session.FlowerInput
	var skipped []string

	for i := startIndex; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}

		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(cell(row, 1)), 64)
		if err != nil || price < 0 {
			skipped = append(skipped, name)
			continue
		}

		in := session.FlowerInput{
			Name:        name,
			Price:       &price,
			Description: strings.TrimSpace(cell(row, 5)),
		}
		if v, err := strconv.Atoi(strings.TrimSpace(cell(row, 2))); err == nil {
			in.Stock = &v
		}
		if v, err := strconv.Atoi(strings.TrimSpace(cell(row, 3))); err == nil {
			in.Threshold = &v
		}
		if v, err := strconv.Atoi(strings.TrimSpace(cell(row, 4))); err == nil {
			in.ShelfLifeDays = &v
		}

		inputs = append(inputs, in)
	}

	return inputs, skipped, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
