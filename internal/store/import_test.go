package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memoix/internal/model"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		"":          PolicySkip,
		"skip":      PolicySkip,
		" Replace ": PolicyReplace,
		"COPY":      PolicyCopy,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePolicy("merge")
	require.Error(t, err)
}

func incoming() *model.Recipe {
	r := soup()
	r.Name = "Miso Soup (from Sam)"
	r.Meta = model.Meta{Favorite: true, CookCount: 9, Rating: 5, Source: model.SourceMemoix}
	return r
}

func TestImport_New(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	got, err := s.Import(ctx, incoming(), PolicySkip)
	require.NoError(t, err)
	meta := got.Local()
	assert.Equal(t, model.SourceImported, meta.Source)
	assert.False(t, meta.Favorite)
	assert.Zero(t, meta.CookCount)
	assert.Zero(t, meta.Rating)
	assert.NotZero(t, meta.RowID)

	stored, err := s.Get(ctx, got.Ref().UUID)
	require.NoError(t, err)
	assert.Equal(t, model.SourceImported, stored.Local().Source)
}

func TestImport_DuplicateSkip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	own := soup()
	require.NoError(t, s.Create(ctx, own))
	require.NoError(t, s.SetFavorite(ctx, own.UUID, true))

	got, err := s.Import(ctx, incoming(), PolicySkip)
	require.ErrorIs(t, err, ErrDuplicate)
	require.NotNil(t, got)
	assert.Equal(t, "Miso Soup", got.Ref().Name)
	assert.Equal(t, model.SourcePersonal, got.Local().Source)

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Local().Favorite)
}

func TestImport_DuplicateReplace(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	own := soup()
	require.NoError(t, s.Create(ctx, own))
	require.NoError(t, s.SetRating(ctx, own.UUID, 3))

	got, err := s.Import(ctx, incoming(), PolicyReplace)
	require.NoError(t, err)
	assert.Equal(t, "Miso Soup (from Sam)", got.Ref().Name)
	assert.Equal(t, model.SourceImported, got.Local().Source)
	assert.Equal(t, 3, got.Local().Rating)

	stored, err := s.Get(ctx, own.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Miso Soup (from Sam)", stored.Ref().Name)
	assert.Equal(t, 3, stored.Local().Rating)
	assert.Equal(t, model.SourceImported, stored.Local().Source)
	assert.Equal(t, own.Meta.RowID, stored.Local().RowID)
}

func TestImport_DuplicateCopy(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	own := soup()
	require.NoError(t, s.Create(ctx, own))

	got, err := s.Import(ctx, incoming(), PolicyCopy)
	require.NoError(t, err)
	assert.NotEqual(t, own.UUID, got.Ref().UUID)

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestImport_LeavesCallerRecordAlone(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Create(ctx, soup()))

	in := incoming()
	got, err := s.Import(ctx, in, PolicyCopy)
	require.NoError(t, err)
	assert.NotEqual(t, in.UUID, got.Ref().UUID)
	assert.Equal(t, soup().UUID, in.UUID)
	assert.True(t, in.Meta.Favorite)
	assert.Equal(t, model.SourceMemoix, in.Meta.Source)
	assert.Equal(t, model.SourceImported, got.Local().Source)
}

func TestImport_FailedTransactionLeavesCallerRecordAlone(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := incoming()
	got, err := s.Import(ctx, in, PolicyCopy)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, soup().UUID, in.UUID)
	assert.Equal(t, model.Meta{Favorite: true, CookCount: 9, Rating: 5, Source: model.SourceMemoix}, in.Meta)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	mine := &model.Recipe{UUID: "mine", Name: "Grandma's Stew", Version: 1}
	require.NoError(t, s.Create(ctx, mine))

	batch := []model.Record{
		&model.Recipe{UUID: "c1", Name: "Carbonara", Version: 1},
		&model.Pizza{UUID: "c2", Name: "Diavola", Version: 1},
		&model.Recipe{UUID: "mine", Name: "Collection Stew", Version: 1},
	}
	res, err := s.Seed(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Added: 2, Skipped: 1}, res)

	require.NoError(t, s.SetFavorite(ctx, "c1", true))

	again := []model.Record{
		&model.Recipe{UUID: "c1", Name: "Carbonara (Roman)", Version: 1},
		&model.Pizza{UUID: "c2", Name: "Diavola", Version: 1},
	}
	res, err = s.Seed(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Updated: 1, Unchanged: 1}, res)

	c1, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Carbonara (Roman)", c1.Ref().Name)
	assert.True(t, c1.Local().Favorite)
	assert.Equal(t, model.SourceMemoix, c1.Local().Source)

	stew, err := s.Get(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, "Grandma's Stew", stew.Ref().Name)
}

func TestSeed_RequiresUUID(t *testing.T) {
	_, err := openTestStore(t).Seed(context.Background(), []model.Record{&model.Recipe{Name: "x"}})
	require.Error(t, err)
}
