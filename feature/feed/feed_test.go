package feed

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lolikeketon/seller-apis/core/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// testConfig mirrors the vendor layout but with a short preamble to keep
// fixtures readable.
func testConfig() Config {
	return Config{
		Kind:           SourceHTTP,
		URL:            "http://example.invalid/ostatki.zip",
		HeaderRow:      2,
		CodeColumn:     "Код",
		QuantityColumn: "Количество",
		PriceColumn:    "Цена",
	}
}

// buildWorkbook creates an xlsx with two preamble rows, a header row and the
// given data rows.
func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Остатки товаров"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "на 2024-01-01"))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Код", "Наименование", "Количество", "Цена"}))
	for i, row := range rows {
		axis := fmt.Sprintf("A%d", 4+i)
		require.NoError(t, f.SetSheetRow(sheet, axis, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// buildArchive zips the workbook under the given entry name.
func buildArchive(t *testing.T, entryName string, workbook []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(entryName)
	require.NoError(t, err)
	_, err = w.Write(workbook)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	workbook := buildWorkbook(t, [][]any{
		{"100", "Casio G-Shock", "5", "5'990.00 руб."},
		{"200", "Casio Edifice", ">10", "12 000 руб."},
		{"", "пустая строка", "3", "100"},
		{"300", "Casio F-91W", "1", "1 490.00 руб."},
	})

	rows, err := ParseWorkbook(workbook, testConfig())
	require.NoError(t, err)

	assert.Equal(t, []reconcile.Row{
		{Code: "100", Quantity: "5", Price: "5'990.00 руб."},
		{Code: "200", Quantity: ">10", Price: "12 000 руб."},
		{Code: "300", Quantity: "1", Price: "1 490.00 руб."},
	}, rows)
}

func TestParseWorkbook_MissingColumns(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "x"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "y"))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Код", "Наименование"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"100", "z"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ParseWorkbook(buf.Bytes(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Количество")
	assert.Contains(t, err.Error(), "Цена")
}

func TestParseWorkbook_HeaderBeyondSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "only row"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.HeaderRow = 17
	_, err = ParseWorkbook(buf.Bytes(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header expected")
}

func TestExtractWorkbook(t *testing.T) {
	workbook := buildWorkbook(t, [][]any{{"100", "w", "5", "100"}})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	readme, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = readme.Write([]byte("not a workbook"))
	require.NoError(t, err)
	entry, err := zw.Create("ostatki.xlsx")
	require.NoError(t, err)
	_, err = entry.Write(workbook)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	got, err := ExtractWorkbook(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, workbook, got)
}

func TestExtractWorkbook_LegacyEntry(t *testing.T) {
	// The vendor archive carries a legacy .xls workbook (CFB container).
	payload := append(append([]byte{}, cfbSignature...), make([]byte, 504)...)
	archive := buildArchive(t, "ostatki.xls", payload)

	got, err := ExtractWorkbook(archive)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestExtractWorkbook_NoSpreadsheet(t *testing.T) {
	archive := buildArchive(t, "readme.txt", []byte("nothing here"))
	_, err := ExtractWorkbook(archive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no spreadsheet entry")
}

func TestExtractWorkbook_CorruptArchive(t *testing.T) {
	_, err := ExtractWorkbook([]byte("definitely not a zip"))
	require.Error(t, err)
}

func TestParseWorkbook_RoutesLegacyFormat(t *testing.T) {
	// Bytes carrying the CFB signature must reach the BIFF reader, never
	// excelize (which only understands OOXML). A truncated container is
	// rejected by the legacy reader itself, not with excelize's
	// "unsupported workbook file format".
	payload := append(append([]byte{}, cfbSignature...), make([]byte, 504)...)

	_, err := ParseWorkbook(payload, testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "legacy")
	assert.NotContains(t, err.Error(), "unsupported workbook file format")
}

func TestLoad_HTTPSource(t *testing.T) {
	workbook := buildWorkbook(t, [][]any{{"100", "w", "5", "1 000 руб."}})
	archive := buildArchive(t, "ostatki.xlsx", workbook)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write(archive)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.URL = server.URL

	src, err := NewSource(cfg)
	require.NoError(t, err)

	rows, err := Load(context.Background(), src, cfg)
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Row{{Code: "100", Quantity: "5", Price: "1 000 руб."}}, rows)
}

func TestHTTPSource_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.URL = server.URL

	_, err := NewHTTPSource(cfg).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

// fakeGetter serves a fixed object payload.
type fakeGetter struct {
	data   []byte
	bucket string
	object string
	err    error
}

func (f *fakeGetter) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	f.bucket = bucketName
	f.object = objectName
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

func TestObjectSource_Fetch(t *testing.T) {
	archive := buildArchive(t, "ostatki.xlsx", buildWorkbook(t, nil))
	getter := &fakeGetter{data: archive}

	src := NewObjectSourceWithClient(getter, "feeds", "ostatki.zip")
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, archive, got)
	assert.Equal(t, "feeds", getter.bucket)
	assert.Equal(t, "ostatki.zip", getter.object)
}

func TestObjectSource_FetchError(t *testing.T) {
	getter := &fakeGetter{err: fmt.Errorf("bucket unreachable")}
	src := NewObjectSourceWithClient(getter, "feeds", "ostatki.zip")

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unreachable")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{name: "http ok", mutate: func(c *Config) {}},
		{name: "http without url", mutate: func(c *Config) { c.URL = "" }, expectErr: true},
		{name: "s3 ok", mutate: func(c *Config) { c.Kind = SourceObject; c.Bucket = "b"; c.Object = "o" }},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Kind = SourceObject; c.Bucket = ""; c.Object = "o" }, expectErr: true},
		{name: "unknown kind", mutate: func(c *Config) { c.Kind = "ftp" }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
