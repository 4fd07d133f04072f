// Package datafile скачивает zip-архив датасета и читает из него TSV-таблицу.
package datafile

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
)

const (
	defaultTimeout  = 60 * time.Second
	maxArchiveBytes = 512 << 20
)

// ErrNoTable в архиве нет ни одного .tsv файла.
var ErrNoTable = errors.New("archive does not contain a .tsv file")

// Table таблица из файла датасета. Пустые ячейки становятся nil,
// числа — int64 или float64, ячейки с JSON-объектами и массивами разбираются.
type Table struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// StatusError ответ файлового хоста с кодом, отличным от 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reader скачивает и декодирует файлы датасетов.
type Reader struct {
	httpClient httpDoer
}

// NewReader создаёт Reader. При client == nil используется клиент с timeout.
func NewReader(client *http.Client, timeout time.Duration) *Reader {
	if client == nil {
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Reader{httpClient: client}
}

// ReadTable скачивает архив по url и возвращает первую TSV-таблицу из него.
func (r *Reader) ReadTable(ctx context.Context, url string) (*Table, error) {
	const op = "datafile.ReadTable"

	body, err := r.download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	table, err := DecodeArchive(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return table, nil
}

func (r *Reader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxArchiveBytes))
}

// DecodeArchive ищет в zip-архиве первый .tsv файл и разбирает его.
func DecodeArchive(data []byte) (*Table, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".tsv") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		table, err := DecodeTSV(rc)
		rc.Close()
		return table, err
	}
	return nil, ErrNoTable
}

// DecodeTSV читает таблицу, первая строка — заголовок.
func DecodeTSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{Columns: []string{}, Rows: []map[string]any{}}, nil
	}
	if err != nil {
		return nil, err
	}

	header = dedupeColumns(header)
	table := &Table{Columns: header, Rows: []map[string]any{}}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = ParseCell(record[i])
			} else {
				row[col] = nil
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// dedupeColumns переименовывает повторные имена колонок в name.1, name.2 и т.д.
func dedupeColumns(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))
	for _, col := range header {
		taken[col] = true
	}
	for i, col := range header {
		n, dup := seen[col]
		seen[col] = n + 1
		if !dup {
			out[i] = col
			continue
		}
		name := fmt.Sprintf("%s.%d", col, n)
		for taken[name] {
			n++
			name = fmt.Sprintf("%s.%d", col, n)
		}
		seen[col] = n + 1
		taken[name] = true
		out[i] = name
	}
	return out
}

// ParseCell приводит текст ячейки к значению для JSON.
func ParseCell(s string) any {
	if s == "" {
		return nil
	}
	switch s[0] {
	case '[', '{':
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
		return s
	}
	switch s {
	case "True", "true":
		return true
	case "False", "false":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	}
	return s
}
