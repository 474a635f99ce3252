package ingredients

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"

	"github.com/five82/memoix/internal/model"
)

// Index maps lower-case product names to categories. On disk it is gzip
// compressed JSON of name to category index, the format the mobile app
// bundles as ingredients_json.gz.
type Index map[string]model.IngredientCategory

// ReadIndex decodes an index. Entries with an out-of-range category are an
// error.
func ReadIndex(r io.Reader) (Index, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open ingredient index: %w", err)
	}
	defer zr.Close()

	var raw map[string]int
	if err := json.NewDecoder(zr).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode ingredient index: %w", err)
	}
	ix := make(Index, len(raw))
	for name, n := range raw {
		cat := model.IngredientCategory(n)
		if !cat.Valid() {
			return nil, fmt.Errorf("decode ingredient index: %q has category %d", name, n)
		}
		ix[name] = cat
	}
	return ix, nil
}

// LoadIndex reads the index at path. A missing file yields a nil index and
// no error.
func LoadIndex(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ingredient index: %w", err)
	}
	defer f.Close()
	return ReadIndex(f)
}

// Write encodes ix with sorted keys.
func (ix Index) Write(w io.Writer) error {
	raw := make(map[string]int, len(ix))
	for name, cat := range ix {
		raw[name] = int(cat)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode ingredient index: %w", err)
	}
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("write ingredient index: %w", err)
	}
	return zw.Close()
}

// Save writes ix to path through a temporary file in the same directory.
func (ix Index) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ingredients-*")
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := ix.Write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close index file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// BuildStats counts what Build did with the export rows.
type BuildStats struct {
	Rows         int
	Classified   int
	Unclassified int // no rule or category matched
	Filtered     int // blank names and prepared foods
}

const (
	maxProductName = 60
	checkEvery     = 10000
)

// Build reads an Open Food Facts TSV export and classifies each product
// name: keyword rules first, then the main category, then the category
// tags. Products nothing matches are left out rather than guessed.
func Build(ctx context.Context, r io.Reader) (Index, BuildStats, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	nameCol, ok := col["product_name"]
	if !ok {
		return nil, BuildStats{}, errors.New("export has no product_name column")
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	ix := make(Index)
	var stats BuildStats
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read export: %w", err)
		}
		stats.Rows++
		if stats.Rows%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
		}

		var name string
		if nameCol < len(rec) {
			name = normalize(rec[nameCol])
		}
		if utf8.RuneCountInString(name) < 2 || !isIngredient(name) {
			stats.Filtered++
			continue
		}

		cat, ok := ClassifyName(name)
		if !ok {
			cat, ok = ClassifyOFFCategory(field(rec, "main_category_en"))
		}
		if !ok {
			cat, ok = ClassifyOFFCategory(field(rec, "categories_tags"))
		}
		if !ok || cat == model.CategoryUnknown {
			stats.Unclassified++
			continue
		}
		ix[name] = cat
		stats.Classified++
	}
	return ix, stats, nil
}

// isIngredient filters out packaged and prepared products.
func isIngredient(name string) bool {
	if utf8.RuneCountInString(name) > maxProductName {
		return false
	}
	digits := 0
	for _, r := range name {
		if unicode.IsDigit(r) {
			digits++
			if digits >= 5 {
				return false
			}
			continue
		}
		digits = 0
	}
	for _, w := range nonIngredientWords {
		if strings.Contains(name, w) {
			return false
		}
	}
	return true
}
