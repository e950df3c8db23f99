package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"vecarrow/component"
	"vecarrow/core"
)

func TestStoreSetGetRemove(t *testing.T) {
	store := NewStore[component.Transform]()
	e := core.Entity(1)

	_, ok := store.Get(e)
	assert.False(t, ok)

	want := component.FromTranslation(mgl32.Vec3{1, 2, 3})
	store.Set(e, want)

	got, ok := store.Get(e)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, store.Has(e))
	assert.Equal(t, 1, store.Count())

	store.Remove(e)
	assert.False(t, store.Has(e))
	assert.Equal(t, 0, store.Count())
}

func TestStoreJournalsFirstInsertOnly(t *testing.T) {
	store := NewStore[component.Visibility]()
	e := core.Entity(7)

	store.Set(e, component.Visibility{})
	store.Set(e, component.Visibility{Hidden: true})

	assert.Equal(t, []core.Entity{e}, store.Added(), "overwrite must not journal again")
	assert.Empty(t, store.Removed())
}

func TestStoreJournalsRemoval(t *testing.T) {
	store := NewStore[component.Visibility]()
	e := core.Entity(3)

	store.Set(e, component.Visibility{})
	store.FlushJournal()

	store.Remove(e)
	assert.Equal(t, []core.Entity{e}, store.Removed())
	assert.Empty(t, store.Added())

	// Removing an absent entity journals nothing
	store.Remove(core.Entity(99))
	assert.Equal(t, []core.Entity{e}, store.Removed())
}

func TestStoreFlushClearsJournals(t *testing.T) {
	store := NewStore[component.Visibility]()
	store.Set(core.Entity(1), component.Visibility{})
	store.Set(core.Entity(2), component.Visibility{})
	store.Remove(core.Entity(1))

	store.FlushJournal()

	assert.Empty(t, store.Added())
	assert.Empty(t, store.Removed())
	// Data survives the flush
	assert.True(t, store.Has(core.Entity(2)))
}

func TestStoreAddAndRemoveWithinWindow(t *testing.T) {
	// An entity whose component appears and disappears before the flush
	// shows up in both journals; lifecycle consumers see the full story
	store := NewStore[component.Visibility]()
	e := core.Entity(5)

	store.Set(e, component.Visibility{})
	store.Remove(e)

	assert.Equal(t, []core.Entity{e}, store.Added())
	assert.Equal(t, []core.Entity{e}, store.Removed())
	assert.False(t, store.Has(e))
}

func TestStoreAllReturnsCopy(t *testing.T) {
	store := NewStore[component.Visibility]()
	store.Set(core.Entity(1), component.Visibility{})
	store.Set(core.Entity(2), component.Visibility{})

	all := store.All()
	assert.Len(t, all, 2)
	all[0] = core.Entity(42)
	assert.NotEqual(t, core.Entity(42), store.All()[0], "All must hand out a copy")
}

func TestStoreClear(t *testing.T) {
	store := NewStore[component.Visibility]()
	store.Set(core.Entity(1), component.Visibility{})
	store.Clear()

	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.Added())
	assert.Empty(t, store.Removed())
}
