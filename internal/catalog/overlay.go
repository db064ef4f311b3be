package catalog

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// localPrefix marks records that exist only in the overlay.
const localPrefix = "local-"

// IsLocal reports whether id belongs to a record created while the backend
// was unavailable.
func IsLocal(id string) bool {
	return strings.HasPrefix(id, localPrefix)
}

func newLocalID() string {
	return localPrefix + uuid.NewString()
}

// overlay records mutations the backend did not accept. It is applied on top
// of every listing until a later successful call supersedes an entry.
type overlay[T any] struct {
	id      func(T) string
	setID   func(*T, string)
	created []T
	updated map[string]T
	deleted map[string]bool
}

func newOverlay[T any](id func(T) string, setID func(*T, string)) *overlay[T] {
	return &overlay[T]{
		id:      id,
		setID:   setID,
		updated: make(map[string]T),
		deleted: make(map[string]bool),
	}
}

// apply returns list with local deletes, replacements and creates applied.
// Backend order is preserved and local creates come last.
func (o *overlay[T]) apply(list []T) []T {
	out := make([]T, 0, len(list)+len(o.created))
	for _, rec := range list {
		id := o.id(rec)
		if o.deleted[id] {
			continue
		}
		if repl, ok := o.updated[id]; ok {
			rec = repl
		}
		out = append(out, rec)
	}
	return append(out, o.created...)
}

// find returns the overlay's view of id. gone is true for local deletes.
func (o *overlay[T]) find(id string) (rec T, found, gone bool) {
	if o.deleted[id] {
		return rec, false, true
	}
	if rec, ok := o.updated[id]; ok {
		return rec, true, false
	}
	if i := o.localIndex(id); i >= 0 {
		return o.created[i], true, false
	}
	return rec, false, false
}

func (o *overlay[T]) create(rec T) T {
	o.setID(&rec, newLocalID())
	o.created = append(o.created, rec)
	return rec
}

func (o *overlay[T]) update(id string, rec T) (T, bool) {
	o.setID(&rec, id)
	if IsLocal(id) {
		i := o.localIndex(id)
		if i < 0 {
			return rec, false
		}
		o.created[i] = rec
		return rec, true
	}
	delete(o.deleted, id)
	o.updated[id] = rec
	return rec, true
}

func (o *overlay[T]) remove(id string) bool {
	if IsLocal(id) {
		i := o.localIndex(id)
		if i < 0 {
			return false
		}
		o.created = slices.Delete(o.created, i, i+1)
		return true
	}
	delete(o.updated, id)
	o.deleted[id] = true
	return true
}

// clear drops any pending entry for id after the backend accepted a call.
func (o *overlay[T]) clear(id string) {
	delete(o.updated, id)
	delete(o.deleted, id)
}

func (o *overlay[T]) localIndex(id string) int {
	return slices.IndexFunc(o.created, func(rec T) bool { return o.id(rec) == id })
}
