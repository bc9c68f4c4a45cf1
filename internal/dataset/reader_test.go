package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFixture(t, "data.csv", "a,b,c\n1,x,\n2,y,3\n")
	fr, err := Read(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fr.Name != "data.csv" {
		t.Errorf("Name = %q, want data.csv", fr.Name)
	}
	if fr.NumRows() != 2 || fr.NumCols() != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", fr.NumRows(), fr.NumCols())
	}
	if got := fr.Column(1); got[0] != "x" || got[1] != "y" {
		t.Errorf("Column(1) = %v", got)
	}
}

func TestReadTSVDelimiterSniff(t *testing.T) {
	path := writeFixture(t, "data.tsv", "a\tb\n1\t2\n")
	fr, err := Read(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fr.NumCols() != 2 {
		t.Fatalf("NumCols = %d, want 2 (tab sniffed from extension)", fr.NumCols())
	}
}

func TestReadRaggedRowsPadded(t *testing.T) {
	path := writeFixture(t, "ragged.csv", "a,b,c\n1\n2,3\n")
	fr, err := Read(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i, row := range fr.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")
	_, err := Read(path, DefaultOptions())
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	path := writeFixture(t, "header.csv", "a,b,c\n")
	_, err := Read(path, DefaultOptions())
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadMaxRows(t *testing.T) {
	path := writeFixture(t, "big.csv", "a\n1\n2\n3\n4\n5\n")
	opt := DefaultOptions()
	opt.MaxRows = 3
	fr, err := Read(path, opt)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fr.NumRows() != 3 {
		t.Fatalf("NumRows = %d, want 3", fr.NumRows())
	}
}

func TestReadWindows1251(t *testing.T) {
	enc := charmap.Windows1251.NewEncoder()
	raw, err := enc.String("город,значение\nМосква,1\n")
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := writeFixture(t, "ru.csv", raw)

	opt := DefaultOptions()
	opt.Encoding = "windows-1251"
	fr, err := Read(path, opt)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if fr.Columns[0] != "город" {
		t.Errorf("header = %q, want город", fr.Columns[0])
	}
	if fr.Rows[0][0] != "Москва" {
		t.Errorf("cell = %q, want Москва", fr.Rows[0][0])
	}
}

func TestReadUnsupportedEncoding(t *testing.T) {
	path := writeFixture(t, "x.csv", "a\n1\n")
	opt := DefaultOptions()
	opt.Encoding = "ebcdic"
	if _, err := Read(path, opt); err == nil || !strings.Contains(err.Error(), "unsupported encoding") {
		t.Fatalf("err = %v, want unsupported encoding", err)
	}
}

func TestIsMissing(t *testing.T) {
	missing := []string{"", "  ", "NA", "n/a", "null", "NaN", "None"}
	for _, v := range missing {
		if !IsMissing(v) {
			t.Errorf("IsMissing(%q) = false, want true", v)
		}
	}
	present := []string{"0", "false", "x", "na na"}
	for _, v := range present {
		if IsMissing(v) {
			t.Errorf("IsMissing(%q) = true, want false", v)
		}
	}
}
