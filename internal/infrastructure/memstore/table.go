package memstore

import "context"

// Table is an insertion-ordered map guarded by its Store's lock.
// Values are stored by value; callers get copies. Every operation takes the
// caller's ctx so the Store can tell transactional access apart.
type Table[K comparable, V any] struct {
	store *Store
	rows  map[K]V
	order []K
}

func NewTable[K comparable, V any](s *Store) *Table[K, V] {
	t := &Table[K, V]{store: s, rows: make(map[K]V)}
	s.register(t)
	return t
}

func (t *Table[K, V]) snapshot() func() {
	rows := make(map[K]V, len(t.rows))
	for k, v := range t.rows {
		rows[k] = v
	}
	order := append([]K(nil), t.order...)
	return func() {
		t.rows = rows
		t.order = order
	}
}

func (t *Table[K, V]) Get(ctx context.Context, key K) (V, bool) {
	defer t.store.enter(ctx)()
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	v, ok := t.rows[key]
	return v, ok
}

func (t *Table[K, V]) Has(ctx context.Context, key K) bool {
	_, ok := t.Get(ctx, key)
	return ok
}

// Put inserts or replaces. Replacing keeps the original position.
func (t *Table[K, V]) Put(ctx context.Context, key K, value V) {
	defer t.store.enter(ctx)()
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.put(key, value)
}

// PutUnique stores value unless another row (a different key) conflicts with it.
// The check and the write happen under one lock.
func (t *Table[K, V]) PutUnique(ctx context.Context, key K, value V, conflicts func(existing V) bool) bool {
	defer t.store.enter(ctx)()
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for k, existing := range t.rows {
		if k != key && conflicts(existing) {
			return false
		}
	}
	t.put(key, value)
	return true
}

func (t *Table[K, V]) put(key K, value V) {
	if _, exists := t.rows[key]; !exists {
		t.order = append(t.order, key)
	}
	t.rows[key] = value
}

func (t *Table[K, V]) Delete(ctx context.Context, key K) bool {
	defer t.store.enter(ctx)()
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.delete(key)
}

func (t *Table[K, V]) delete(key K) bool {
	if _, ok := t.rows[key]; !ok {
		return false
	}
	delete(t.rows, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteWhere removes every row matching pred and returns how many went.
func (t *Table[K, V]) DeleteWhere(ctx context.Context, pred func(V) bool) int {
	defer t.store.enter(ctx)()
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	var doomed []K
	for _, k := range t.order {
		if pred(t.rows[k]) {
			doomed = append(doomed, k)
		}
	}
	for _, k := range doomed {
		t.delete(k)
	}
	return len(doomed)
}

// Values returns all rows in insertion order.
func (t *Table[K, V]) Values(ctx context.Context) []V {
	return t.Filter(ctx, func(V) bool { return true })
}

func (t *Table[K, V]) Filter(ctx context.Context, pred func(V) bool) []V {
	defer t.store.enter(ctx)()
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	out := make([]V, 0, len(t.order))
	for _, k := range t.order {
		if v := t.rows[k]; pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *Table[K, V]) Find(ctx context.Context, pred func(V) bool) (V, bool) {
	defer t.store.enter(ctx)()
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	for _, k := range t.order {
		if v := t.rows[k]; pred(v) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func (t *Table[K, V]) Len(ctx context.Context) int {
	defer t.store.enter(ctx)()
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return len(t.rows)
}
