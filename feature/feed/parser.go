package feed

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/lolikeketon/seller-apis/core/reconcile"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// cfbSignature is the magic number of the Compound File Binary container
// every legacy .xls workbook is stored in. OOXML workbooks are zip archives
// and start with "PK" instead.
var cfbSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Load fetches, extracts and parses the feed in one call.
func Load(ctx context.Context, src Source, cfg Config) ([]reconcile.Row, error) {
	archive, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	workbook, err := ExtractWorkbook(archive)
	if err != nil {
		return nil, err
	}
	return ParseWorkbook(workbook, cfg)
}

// ParseWorkbook extracts inventory rows from the vendor workbook. Both the
// legacy BIFF format the vendor actually ships (.xls) and OOXML (.xlsx) are
// accepted; the container signature decides which reader handles the bytes.
// Rows above the configured header line are preamble and skipped; rows with
// an empty product code are skipped. Cell values are returned raw,
// normalization is the reconciler's job.
func ParseWorkbook(workbook []byte, cfg Config) ([]reconcile.Row, error) {
	var (
		rows [][]string
		err  error
	)
	if bytes.HasPrefix(workbook, cfbSignature) {
		rows, err = legacyRows(workbook, cfg.Sheet)
	} else {
		rows, err = ooxmlRows(workbook, cfg.Sheet)
	}
	if err != nil {
		return nil, err
	}
	return parseRows(rows, cfg)
}

// ooxmlRows reads every row of the selected sheet from an OOXML workbook.
func ooxmlRows(workbook []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		return nil, fmt.Errorf("feed: open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("feed: read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// legacyRows reads every row of the selected sheet from a BIFF workbook.
func legacyRows(workbook []byte, sheetName string) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		return nil, fmt.Errorf("feed: open legacy workbook: %w", err)
	}

	index := 0
	if sheetName != "" {
		index = -1
		for i, s := range wb.GetSheets() {
			if s.GetName() == sheetName {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("feed: read sheet %q: sheet does not exist in legacy workbook", sheetName)
		}
	}

	sheet, err := wb.GetSheet(index)
	if err != nil {
		return nil, fmt.Errorf("feed: read legacy sheet: %w", err)
	}

	out := make([][]string, 0, sheet.GetNumberRows())
	for i := 0; i < sheet.GetNumberRows(); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			return nil, fmt.Errorf("feed: read legacy row %d: %w", i+1, err)
		}
		cells := row.GetCols()
		line := make([]string, 0, len(cells))
		for _, c := range cells {
			line = append(line, c.GetString())
		}
		out = append(out, line)
	}
	return out, nil
}

// parseRows maps raw sheet rows onto inventory rows using the configured
// header layout.
func parseRows(rows [][]string, cfg Config) ([]reconcile.Row, error) {
	if len(rows) <= cfg.HeaderRow {
		return nil, fmt.Errorf("feed: workbook has %d rows, header expected at row %d", len(rows), cfg.HeaderRow+1)
	}

	codeIdx, quantityIdx, priceIdx, err := locateColumns(rows[cfg.HeaderRow], cfg)
	if err != nil {
		return nil, err
	}

	out := make([]reconcile.Row, 0, len(rows)-cfg.HeaderRow-1)
	for _, r := range rows[cfg.HeaderRow+1:] {
		code := strings.TrimSpace(cell(r, codeIdx))
		if code == "" {
			continue
		}
		out = append(out, reconcile.Row{
			Code:     code,
			Quantity: cell(r, quantityIdx),
			Price:    cell(r, priceIdx),
		})
	}
	return out, nil
}

// locateColumns maps the configured column names onto header cell indices.
func locateColumns(header []string, cfg Config) (code, quantity, price int, err error) {
	code, quantity, price = -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case cfg.CodeColumn:
			code = i
		case cfg.QuantityColumn:
			quantity = i
		case cfg.PriceColumn:
			price = i
		}
	}

	var missing []string
	if code < 0 {
		missing = append(missing, cfg.CodeColumn)
	}
	if quantity < 0 {
		missing = append(missing, cfg.QuantityColumn)
	}
	if price < 0 {
		missing = append(missing, cfg.PriceColumn)
	}
	if len(missing) > 0 {
		return 0, 0, 0, fmt.Errorf("feed: header is missing columns: %s", strings.Join(missing, ", "))
	}
	return code, quantity, price, nil
}

// cell reads a row cell by index. Readers trim trailing empty cells, so an
// index past the row's end means an empty value.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
