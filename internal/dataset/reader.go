package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Options controls CSV ingestion.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects from the file extension
	// ('.tsv' means tab, everything else comma).
	Delimiter rune
	// Encoding of the input file: "utf-8" (default), "latin-1", "windows-1251".
	Encoding string
	// MaxRows limits rows loaded; 0 means unlimited.
	MaxRows int
}

// DefaultOptions returns reasonable defaults for CSV ingestion.
func DefaultOptions() Options {
	return Options{Encoding: "utf-8"}
}

// ErrEmptyDataset is returned when a CSV parses but carries no data rows.
var ErrEmptyDataset = errors.New("dataset is empty")

// Read loads a CSV file into a Frame.
func Read(path string, opt Options) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	opt.Delimiter = delim

	fr, err := ReadReader(f, opt)
	if err != nil {
		return nil, err
	}
	fr.Name = filepath.Base(path)
	return fr, nil
}

// ReadReader loads CSV content from r into a Frame. The delimiter must be
// set in opt (Read resolves it from the path first).
func ReadReader(r io.Reader, opt Options) (*Frame, error) {
	dec, err := decoderFor(opt.Encoding)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ncol := len(header)
	cols := make([]string, ncol)
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = math.MaxInt
	}

	fr := &Frame{Columns: cols}
	for len(fr.Rows) < maxRows {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(fr.Rows)+1, err)
		}
		row := make([]string, ncol)
		copy(row, rec)
		fr.Rows = append(fr.Rows, row)
	}

	if fr.Empty() {
		return nil, ErrEmptyDataset
	}
	return fr, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

func decoderFor(name string) (transform.Transformer, error) {
	var enc *encoding.Decoder
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin-1", "latin1", "iso-8859-1":
		enc = charmap.ISO8859_1.NewDecoder()
	case "windows-1251", "cp1251":
		enc = charmap.Windows1251.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	return enc, nil
}
