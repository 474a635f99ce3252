package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/memoix/internal/model"
)

func sample() []model.Record {
	fav := &model.Pizza{UUID: "p1", Name: "Margherita"}
	fav.Meta.Favorite = true
	return []model.Record{
		&model.Recipe{UUID: "r1", Name: "Dal"},
		fav,
		&model.Recipe{UUID: "r2", Name: "Pho"},
		&model.SmokingRecipe{UUID: "s1", Name: "Ribs"},
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(sample(), nil)

	snap := s.Snapshot()
	if !snap.Loaded || len(snap.Records) != 4 {
		t.Fatalf("snapshot = %#v, want 4 loaded records", snap)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Records[0] = nil
	snap2 := s.Snapshot()
	if snap2.Records[0] == nil {
		t.Fatal("Snapshot should clone the record slice")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(sample(), nil)
	origErr := errors.New("database is locked")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Records) != 4 {
		t.Fatalf("records changed on error: got %d want 4", len(snap.Records))
	}
	if snap.LastError == nil || snap.LastError.Error() != "database is locked" {
		t.Fatalf("LastError = %v, want database is locked", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should wrap the original")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsDegraded() {
		t.Fatalf("fresh store = %#v, want no failures", snap)
	}

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsDegraded() {
		t.Fatalf("after 1 failure = %d degraded=%v", snap.ConsecutiveFailures, snap.IsDegraded())
	}

	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsDegraded() {
		t.Fatalf("after 2 failures = %d degraded=%v", snap.ConsecutiveFailures, snap.IsDegraded())
	}

	s.Update(sample(), nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsDegraded() {
		t.Fatalf("after success = %d degraded=%v", snap.ConsecutiveFailures, snap.IsDegraded())
	}
}

func TestSnapshot_Queries(t *testing.T) {
	var s Store
	s.Update(sample(), nil)
	snap := s.Snapshot()

	counts := snap.Counts()
	if counts[model.KindRecipe] != 2 || counts[model.KindPizza] != 1 || counts[model.KindSandwich] != 0 {
		t.Fatalf("Counts = %v", counts)
	}
	if snap.Favorites() != 1 {
		t.Fatalf("Favorites = %d, want 1", snap.Favorites())
	}
	if got := snap.Filter(model.KindRecipe, false); len(got) != 2 || got[1].Ref().Name != "Pho" {
		t.Fatalf("Filter(recipe) = %v", got)
	}
	if got := snap.Filter("", true); len(got) != 1 || got[0].Ref().UUID != "p1" {
		t.Fatalf("Filter(favorites) = %v", got)
	}
	if got := snap.Filter("", false); len(got) != 4 {
		t.Fatalf("Filter(all) = %d records, want 4", len(got))
	}
	if r, ok := snap.Find("s1"); !ok || r.Ref().Name != "Ribs" {
		t.Fatalf("Find(s1) = %v, %v", r, ok)
	}
	if _, ok := snap.Find("nope"); ok {
		t.Fatal("Find(nope) ok = true")
	}
}
