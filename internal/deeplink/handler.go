package deeplink

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/share"
	"github.com/five82/memoix/internal/store"
)

// Importer persists a decoded record. *store.Store satisfies it.
type Importer interface {
	Import(ctx context.Context, r model.Record, policy store.Policy) (model.Record, error)
}

// Handler turns incoming share links into stored records.
type Handler struct {
	importer Importer
	policy   store.Policy
	log      *zap.Logger
}

// NewHandler returns a Handler that imports through imp using policy for
// uuids that already exist. A nil logger discards output.
func NewHandler(imp Importer, policy store.Policy, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{importer: imp, policy: policy, log: log.Named("deeplink")}
}

// HandleLink decodes link and imports the record. Nothing is written when
// decoding fails. When the uuid exists and the policy is skip, the existing
// record is returned along with store.ErrDuplicate.
func (h *Handler) HandleLink(ctx context.Context, link string) (model.Record, error) {
	rec, err := share.Decode(link)
	if err != nil {
		fields := []zap.Field{
			zap.String("reason", share.Reason(err)),
			zap.Int("length", len(link)),
		}
		var de *share.DecodeError
		if errors.As(err, &de) && de.Kind != "" {
			fields = append(fields, zap.String("kind", string(de.Kind)))
		}
		h.log.Warn("share link rejected", fields...)
		return nil, err
	}

	ref := rec.Ref()
	saved, err := h.importer.Import(ctx, rec, h.policy)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		h.log.Info("share link already imported",
			zap.String("kind", string(ref.Kind)),
			zap.String("code", share.ShortCode(rec)),
			zap.String("policy", string(h.policy)))
		return saved, err
	case err != nil:
		h.log.Error("import failed", zap.String("kind", string(ref.Kind)), zap.Error(err))
		return nil, fmt.Errorf("import %s: %w", ref.Kind, err)
	}

	h.log.Info("share link imported",
		zap.String("kind", string(ref.Kind)),
		zap.String("code", share.ShortCode(saved)),
		zap.String("policy", string(h.policy)))
	return saved, nil
}
