package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/five82/memoix/internal/model"
)

// maxParallel bounds concurrent file reads.
const maxParallel = 4

// Result is the outcome of loading one or more collection files.
type Result struct {
	Records []model.Record
	Files   int
	Skipped int // entries with no name or a course that has no record kind
}

// Load reads collection files (JSON or YAML arrays) and directories of them.
// Records come back in file order, then entry order. Every record is tagged
// as coming from the official collection.
func Load(ctx context.Context, paths ...string) (Result, error) {
	files, err := expand(paths)
	if err != nil {
		return Result{}, err
	}

	type fileResult struct {
		records []model.Record
		skipped int
	}
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs, skipped, err := loadFile(path)
			if err != nil {
				return err
			}
			results[i] = fileResult{records: recs, skipped: skipped}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	out := Result{Files: len(files)}
	for _, r := range results {
		out.Records = append(out.Records, r.records...)
		out.Skipped += r.skipped
	}
	return out, nil
}

// expand turns the given paths into a sorted list of collection files.
func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && isCollectionFile(e.Name()) {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no collection files in %s", strings.Join(paths, ", "))
	}
	return files, nil
}

func isCollectionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func loadFile(path string) ([]model.Record, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	entries, err := parse(path, data)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	fileCourse := courseFromPath(path)
	var (
		recs    []model.Record
		skipped int
	)
	for _, e := range entries {
		course := strings.TrimSpace(e.Course)
		if course == "" {
			course = fileCourse
		}
		rec, ok := e.toRecord(course)
		if !ok {
			skipped++
			continue
		}
		recs = append(recs, rec)
	}
	return recs, skipped, nil
}

// parse decodes a JSON or YAML array of entries. YAML is converted to JSON
// first so both formats share the JSON field names.
func parse(path string, data []byte) ([]entry, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, nil
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		data = converted
	}
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// courseFromPath infers a course from the file name: pizzas.json -> pizzas.
func courseFromPath(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
