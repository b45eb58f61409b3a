// internal/words/load.go
//
// File loaders. The format is picked from the file extension:
//   .xlsx/.xlsm      first sheet, first column, header row skipped
//   .csv             first column, header row skipped
//   .db/.sqlite(3)   words table of a dictionary database (see dictdb)
//   .xls             rejected with ErrUnsupportedFormat
//   anything else    one word per line, blank lines and "#" comments ignored

package words

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/robalobadob/wordhunt/internal/dictdb"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// ErrUnsupportedFormat is returned for files that look like word lists but cannot be read.
var ErrUnsupportedFormat = errors.New("words: unsupported format")

// Load reads a dictionary from path.
func Load(path string) (*Dictionary, error) {
	entries, err := ReadEntries(path)
	if err != nil {
		return nil, err
	}
	d := New(entries)
	if d.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return d, nil
}

// ReadEntries returns the raw (un-normalized) entries of a dictionary source.
func ReadEntries(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readSpreadsheet(path)
	case ".csv":
		return readCSV(path)
	case ".db", ".sqlite", ".sqlite3":
		return readDatabase(path)
	case ".xls":
		return nil, fmt.Errorf("%s: %w: legacy .xls, convert to .xlsx", path, ErrUnsupportedFormat)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readLines(f)
	}
}

func readSpreadsheet(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return firstColumn(rows), nil
}

func readCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: %w", path, err)
		}
		rows = append(rows, rec)
	}
	return firstColumn(rows), nil
}

func readDatabase(path string) ([]string, error) {
	st, err := dictdb.Open(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Words(context.Background())
}

// firstColumn drops the header row and returns the first cell of every other row.
func firstColumn(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	out := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) > 0 && strings.TrimSpace(row[0]) != "" {
			out = append(out, row[0])
		}
	}
	return out
}

// readLines returns the non-empty, non-comment lines of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
