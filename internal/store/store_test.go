package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memoix/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "memoix.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func soup() *model.Recipe {
	return &model.Recipe{
		UUID:        "7a1c0f2e-3b4d-4e5f-8a9b-0c1d2e3f4a5b",
		Name:        "Miso Soup",
		Course:      "soups",
		Ingredients: []model.Ingredient{{Name: "Miso", Amount: "2", Unit: "tbsp"}},
		Directions:  []string{"Heat dashi", "Whisk in miso"},
		Version:     model.SchemaVersion,
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	r := soup()
	r.Meta.Favorite = true
	require.NoError(t, s.Create(ctx, r))
	assert.NotZero(t, r.Meta.RowID)
	assert.Equal(t, model.SourcePersonal, r.Meta.Source)
	assert.False(t, r.Meta.CreatedAt.IsZero())

	got, err := s.Get(ctx, r.UUID)
	require.NoError(t, err)
	rec, ok := got.(*model.Recipe)
	require.True(t, ok, "Get returned %T", got)
	assert.Equal(t, "Miso Soup", rec.Name)
	assert.Equal(t, []string{"Heat dashi", "Whisk in miso"}, rec.Directions)
	assert.True(t, rec.Meta.Favorite)
	assert.Equal(t, r.Meta.RowID, rec.Meta.RowID)
	assert.WithinDuration(t, r.Meta.CreatedAt, rec.Meta.CreatedAt, time.Millisecond)
}

func TestCreate_AssignsUUID(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	p := &model.Pizza{Name: "Bianca", Base: model.BaseOil, Version: model.SchemaVersion}
	require.NoError(t, s.Create(ctx, p))
	require.Len(t, p.UUID, 36)

	_, err := s.Get(ctx, p.UUID)
	require.NoError(t, err)
}

func TestCreate_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Create(ctx, soup()))
	err := s.Create(ctx, soup())
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestGet_NotFound(t *testing.T) {
	_, err := openTestStore(t).Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	recs := []model.Record{
		soup(),
		&model.Recipe{UUID: "r2", Name: "apple Pie", Version: 1},
		&model.Pizza{UUID: "p1", Name: "Margherita", Version: 1},
		&model.Sandwich{UUID: "s1", Name: "Reuben", Version: 1},
	}
	for _, r := range recs {
		require.NoError(t, s.Create(ctx, r))
	}
	require.NoError(t, s.SetFavorite(ctx, "p1", true))

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple Pie", "Margherita", "Miso Soup", "Reuben"}, names(all))

	recipes, err := s.List(ctx, Filter{Kind: model.KindRecipe})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple Pie", "Miso Soup"}, names(recipes))

	favs, err := s.List(ctx, Filter{FavoritesOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Margherita"}, names(favs))

	found, err := s.List(ctx, Filter{Query: "MISO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Miso Soup"}, names(found))

	none, err := s.List(ctx, Filter{Source: model.SourceImported})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func names(recs []model.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Ref().Name)
	}
	return out
}

func TestUpdate_KeepsLocalMetadata(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	r := soup()
	require.NoError(t, s.Create(ctx, r))
	require.NoError(t, s.SetRating(ctx, r.UUID, 4))

	r.Name = "Red Miso Soup"
	r.Meta.Rating = 0
	require.NoError(t, s.Update(ctx, r))

	got, err := s.Get(ctx, r.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Red Miso Soup", got.Ref().Name)
	assert.Equal(t, 4, got.Local().Rating)

	err = s.Update(ctx, &model.Recipe{UUID: "nope", Name: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalMetadataSetters(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	r := soup()
	require.NoError(t, s.Create(ctx, r))

	require.NoError(t, s.RecordCook(ctx, r.UUID))
	require.NoError(t, s.RecordCook(ctx, r.UUID))
	require.NoError(t, s.SetRating(ctx, r.UUID, MaxRating))
	require.NoError(t, s.SetFavorite(ctx, r.UUID, true))
	require.NoError(t, s.SetImagePath(ctx, r.UUID, "/tmp/soup.jpg"))

	got, err := s.Get(ctx, r.UUID)
	require.NoError(t, err)
	meta := got.Local()
	assert.Equal(t, 2, meta.CookCount)
	assert.Equal(t, MaxRating, meta.Rating)
	assert.True(t, meta.Favorite)
	assert.Equal(t, "/tmp/soup.jpg", meta.ImagePath)
	assert.False(t, meta.LastCookedAt.IsZero())

	require.ErrorIs(t, s.SetRating(ctx, r.UUID, 6), ErrRating)
	require.ErrorIs(t, s.SetRating(ctx, r.UUID, -1), ErrRating)
	require.ErrorIs(t, s.RecordCook(ctx, "missing"), ErrNotFound)
	require.ErrorIs(t, s.SetFavorite(ctx, "missing", true), ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	r := soup()
	require.NoError(t, s.Create(ctx, r))
	require.NoError(t, s.Delete(ctx, r.UUID))
	_, err := s.Get(ctx, r.UUID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, r.UUID), ErrNotFound)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "memoix.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, soup()))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	require.Error(t, err)
}
