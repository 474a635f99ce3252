package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/five82/memoix/internal/model"
)

// Policy decides what Import does when the incoming uuid already exists.
type Policy string

const (
	// PolicySkip keeps the existing record untouched and reports ErrDuplicate.
	PolicySkip Policy = "skip"
	// PolicyReplace overwrites the shareable fields, keeps local metadata and
	// marks the record imported.
	PolicyReplace Policy = "replace"
	// PolicyCopy inserts the incoming record under a fresh uuid.
	PolicyCopy Policy = "copy"
)

// ParsePolicy maps a config value to a Policy. Blank means PolicySkip.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicySkip, nil
	case PolicySkip, PolicyReplace, PolicyCopy:
		return p, nil
	}
	return "", fmt.Errorf("unknown duplicate policy %q (want skip, replace or copy)", s)
}

// Import persists a record received from another device in one transaction.
// The record is always stored with imported provenance and with none of the
// incoming local metadata. On PolicySkip with an existing uuid the existing
// record is returned together with ErrDuplicate. The caller's record is
// never modified; the stored copy is returned once the transaction commits.
func (s *Store) Import(ctx context.Context, in model.Record, policy Policy) (model.Record, error) {
	r := model.Clone(in)
	*r.Local() = model.Meta{Source: model.SourceImported}

	var (
		out model.Record
		dup bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := getRecord(ctx, tx, r.Ref().UUID)
		switch {
		case errors.Is(err, ErrNotFound):
			if err := s.insert(ctx, tx, r); err != nil {
				return err
			}
			out = r
			return nil
		case err != nil:
			return err
		}

		switch policy {
		case PolicyReplace:
			return s.replace(ctx, tx, existing, r, &out)
		case PolicyCopy:
			model.SetUUID(r, model.NewUUID())
			if err := s.insert(ctx, tx, r); err != nil {
				return err
			}
			out = r
			return nil
		default:
			out, dup = existing, true
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	if dup {
		return out, fmt.Errorf("%w: %s", ErrDuplicate, out.Ref().UUID)
	}
	return out, nil
}

// replace writes incoming over existing, carrying existing's local metadata.
func (s *Store) replace(ctx context.Context, tx *sql.Tx, existing, incoming model.Record, out *model.Record) error {
	body, err := model.ShareableJSON(incoming)
	if err != nil {
		return err
	}
	meta := *existing.Local()
	meta.Source = model.SourceImported
	meta.UpdatedAt = s.now()

	ref := incoming.Ref()
	if _, err := tx.ExecContext(ctx,
		`UPDATE records SET kind = ?, name = ?, body = ?, source = ?, updated_at = ? WHERE uuid = ?`,
		string(ref.Kind), ref.Name, string(body), string(meta.Source), unixMilli(meta.UpdatedAt), ref.UUID); err != nil {
		return fmt.Errorf("replace %s: %w", ref.UUID, err)
	}
	*incoming.Local() = meta
	*out = incoming
	return nil
}

// SeedResult counts what Seed did.
type SeedResult struct {
	Added     int
	Updated   int
	Unchanged int
	Skipped   int // uuid taken by a personal or imported record
}

// Seed loads official collection records. New uuids are inserted; existing
// collection records get fresh content with their local metadata kept.
// Records the user created or imported under the same uuid are left alone.
func (s *Store) Seed(ctx context.Context, records []model.Record) (SeedResult, error) {
	var res SeedResult
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, r := range records {
			if strings.TrimSpace(r.Ref().UUID) == "" {
				return fmt.Errorf("seed %q: uuid required", r.Ref().Name)
			}
			existing, err := getRecord(ctx, tx, r.Ref().UUID)
			switch {
			case errors.Is(err, ErrNotFound):
				*r.Local() = model.Meta{Source: model.SourceMemoix}
				if err := s.insert(ctx, tx, r); err != nil {
					return err
				}
				res.Added++
				continue
			case err != nil:
				return err
			}

			if existing.Local().Source != model.SourceMemoix {
				res.Skipped++
				continue
			}
			body, err := model.ShareableJSON(r)
			if err != nil {
				return err
			}
			ref := r.Ref()
			upd, err := tx.ExecContext(ctx,
				`UPDATE records SET kind = ?, name = ?, body = ?, updated_at = ? WHERE uuid = ? AND body <> ?`,
				string(ref.Kind), ref.Name, string(body), unixMilli(s.now()), ref.UUID, string(body))
			if err != nil {
				return fmt.Errorf("seed %s: %w", ref.UUID, err)
			}
			if n, _ := upd.RowsAffected(); n > 0 {
				res.Updated++
			} else {
				res.Unchanged++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
