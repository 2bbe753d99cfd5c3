package feed

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// ExtractWorkbook returns the first spreadsheet entry of the zip archive.
// The vendor ships a single workbook per archive; everything else in the
// archive is ignored.
func ExtractWorkbook(archive []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("feed: open archive: %w", err)
	}

	for _, entry := range reader.File {
		if !isWorkbook(entry.Name) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("feed: open archive entry %s: %w", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("feed: read archive entry %s: %w", entry.Name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("feed: no spreadsheet entry in archive")
}

func isWorkbook(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	default:
		return false
	}
}
