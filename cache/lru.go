package cache

import "container/list"

// recencyTable is the hot tier: a key-value map with strict access
// ordering. The front of the list is the most recently used entry, the
// back is the eviction victim. The table itself never evicts; the engine
// runs an explicit check after every insertion.
type recencyTable[K comparable, V any] struct {
	order *list.List
	index map[K]*list.Element
}

type hotEntry[K comparable, V any] struct {
	key   K
	value V
}

func newRecencyTable[K comparable, V any]() *recencyTable[K, V] {
	return &recencyTable[K, V]{
		order: list.New(),
		index: make(map[K]*list.Element),
	}
}

func (t *recencyTable[K, V]) len() int {
	return t.order.Len()
}

// get returns the value for key and marks it most recently used.
func (t *recencyTable[K, V]) get(key K) (V, bool) {
	if el, ok := t.index[key]; ok {
		t.order.MoveToFront(el)
		return el.Value.(*hotEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// put inserts or overwrites key, marks it most recently used, and
// returns the previous value when one was present.
func (t *recencyTable[K, V]) put(key K, value V) (V, bool) {
	if el, ok := t.index[key]; ok {
		ent := el.Value.(*hotEntry[K, V])
		prev := ent.value
		ent.value = value
		t.order.MoveToFront(el)
		return prev, true
	}
	t.index[key] = t.order.PushFront(&hotEntry[K, V]{key: key, value: value})
	var zero V
	return zero, false
}

// oldest returns the least recently used entry without removing it.
func (t *recencyTable[K, V]) oldest() (K, V, bool) {
	el := t.order.Back()
	if el == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	ent := el.Value.(*hotEntry[K, V])
	return ent.key, ent.value, true
}

func (t *recencyTable[K, V]) remove(key K) (V, bool) {
	el, ok := t.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(t.index, key)
	t.order.Remove(el)
	return el.Value.(*hotEntry[K, V]).value, true
}

func (t *recencyTable[K, V]) contains(key K) bool {
	_, ok := t.index[key]
	return ok
}

func (t *recencyTable[K, V]) keys() []K {
	keys := make([]K, 0, len(t.index))
	for key := range t.index {
		keys = append(keys, key)
	}
	return keys
}

func (t *recencyTable[K, V]) clear() {
	t.order.Init()
	clear(t.index)
}
