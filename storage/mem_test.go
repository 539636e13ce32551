package storage

import (
	"bytes"
	"sort"
	"sync"
)

type memOp struct {
	key    []byte
	value  []byte
	delete bool
}

type memBatch struct {
	ops []memOp
}

func (b *memBatch) Len() int {
	return len(b.ops)
}

func (b *memBatch) Put(key, value []byte) {
	b.ops = append(b.ops, memOp{key: key, value: value})
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, memOp{key: key, delete: true})
}

type memStorage struct {
	sync.RWMutex
	m map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{m: map[string][]byte{}}
}

func (m *memStorage) Close() error {
	return nil
}

func (m *memStorage) Get(key []byte) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()

	v, found := m.m[string(key)]
	if !found {
		return nil, RecordNotFoundError
	}

	return v, nil
}

func (m *memStorage) Exists(key []byte) (bool, error) {
	m.RLock()
	defer m.RUnlock()

	_, found := m.m[string(key)]

	return found, nil
}

func (m *memStorage) Insert(key, value []byte) error {
	m.Lock()
	defer m.Unlock()

	if _, found := m.m[string(key)]; found {
		return RecordAlreadyExistsError
	}

	m.m[string(key)] = value

	return nil
}

func (m *memStorage) Update(key, value []byte) error {
	m.Lock()
	defer m.Unlock()

	if _, found := m.m[string(key)]; !found {
		return RecordNotFoundError
	}

	m.m[string(key)] = value

	return nil
}

func (m *memStorage) Delete(key []byte) error {
	m.Lock()
	defer m.Unlock()

	if _, found := m.m[string(key)]; !found {
		return RecordNotFoundError
	}

	delete(m.m, string(key))

	return nil
}

func (m *memStorage) Iterator(prefix []byte, reverse bool, callback func([]byte, []byte) bool) error {
	m.RLock()
	var keys []string
	for k := range m.m {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	m.RUnlock()

	sort.Strings(keys)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}

	for _, k := range keys {
		m.RLock()
		v := m.m[k]
		m.RUnlock()

		if !callback([]byte(k), v) {
			break
		}
	}

	return nil
}

func (m *memStorage) Batch() Batch {
	return &memBatch{}
}

func (m *memStorage) WriteBatch(b Batch) error {
	m.Lock()
	defer m.Unlock()

	for _, op := range b.(*memBatch).ops {
		if op.delete {
			delete(m.m, string(op.key))
			continue
		}

		m.m[string(op.key)] = op.value
	}

	return nil
}
