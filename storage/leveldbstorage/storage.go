package leveldbstorage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	leveldbIterator "github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	leveldbStorage "github.com/syndtr/goleveldb/leveldb/storage"
	leveldbUtil "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/spikeekips/kaspaddr/storage"
)

// Config.Path is the database directory; empty Path opens a memory storage.
type Config struct {
	Path string
}

type Storage struct {
	sync.RWMutex
	config Config
	db     *leveldb.DB
}

type openMode int

const (
	createOnly openMode = iota
	openOnly
	openOrCreate
)

// NewStorage creates new database; it fails if the database already exists.
func NewStorage(config Config) (*Storage, error) {
	s := &Storage{config: config}

	return s, s.open(createOnly)
}

// OpenStorage opens the existing database.
func OpenStorage(config Config) (*Storage, error) {
	s := &Storage{config: config}

	return s, s.open(openOnly)
}

// OpenOrCreateStorage opens the database, creating it when missing.
func OpenOrCreateStorage(config Config) (*Storage, error) {
	s := &Storage{config: config}

	return s, s.open(openOrCreate)
}

func (s *Storage) open(mode openMode) error {
	s.Lock()
	defer s.Unlock()

	if s.db != nil {
		return DBNotClosedError
	}

	var db *leveldb.DB
	var err error

	if len(s.config.Path) < 1 {
		db, err = leveldb.Open(leveldbStorage.NewMemStorage(), nil)
	} else {
		opts := &opt.Options{}
		switch mode {
		case createOnly:
			opts.ErrorIfExist = true
		case openOnly:
			opts.ErrorIfMissing = true
		}
		db, err = leveldb.OpenFile(s.config.Path, opts)
	}

	if err != nil {
		return LevelDBError.Wrap(err)
	}

	s.db = db

	return nil
}

func (s *Storage) Close() error {
	s.Lock()
	defer s.Unlock()

	if s.db == nil {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return LevelDBError.Wrap(err)
	}

	s.db = nil

	return nil
}

func (s *Storage) Get(key []byte) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	if s.db == nil {
		return nil, DBClosedError
	}

	value, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, storage.RecordNotFoundError.AppendMessage("key=%q", key)
	} else if err != nil {
		return nil, LevelDBError.Wrap(err)
	}

	return value, nil
}

func (s *Storage) Exists(key []byte) (bool, error) {
	s.RLock()
	defer s.RUnlock()

	return s.exists(key)
}

func (s *Storage) exists(key []byte) (bool, error) {
	if s.db == nil {
		return false, DBClosedError
	}

	exists, err := s.db.Has(key, nil)
	if err != nil {
		return false, LevelDBError.Wrap(err)
	}

	return exists, nil
}

func (s *Storage) Insert(key, value []byte) error {
	s.Lock()
	defer s.Unlock()

	if found, err := s.exists(key); err != nil {
		return err
	} else if found {
		return storage.RecordAlreadyExistsError.AppendMessage("key=%q", key)
	}

	if err := s.db.Put(key, value, nil); err != nil {
		return LevelDBError.Wrap(err)
	}

	return nil
}

func (s *Storage) Update(key, value []byte) error {
	s.Lock()
	defer s.Unlock()

	if found, err := s.exists(key); err != nil {
		return err
	} else if !found {
		return storage.RecordNotFoundError.AppendMessage("key=%q", key)
	}

	if err := s.db.Put(key, value, nil); err != nil {
		return LevelDBError.Wrap(err)
	}

	return nil
}

func (s *Storage) Delete(key []byte) error {
	s.Lock()
	defer s.Unlock()

	if found, err := s.exists(key); err != nil {
		return err
	} else if !found {
		return storage.RecordNotFoundError.AppendMessage("key=%q", key)
	}

	if err := s.db.Delete(key, nil); err != nil {
		return LevelDBError.Wrap(err)
	}

	return nil
}

func (s *Storage) Iterator(prefix []byte, reverse bool, callback func([]byte, []byte) bool) error {
	s.RLock()
	defer s.RUnlock()

	if s.db == nil {
		return DBClosedError
	}

	var slice *leveldbUtil.Range
	if prefix != nil {
		slice = leveldbUtil.BytesPrefix(prefix)
	}

	iter := s.db.NewIterator(slice, nil)
	defer iter.Release()

	var next func() bool
	if reverse {
		if !iter.Last() {
			return nil // NOTE empty
		}

		next = iter.Prev
	} else {
		if !iter.First() {
			return nil // NOTE empty
		}
		next = iter.Next
	}

	if !iteratorCallback(iter, callback) {
		return nil
	}

	for next() {
		if !iteratorCallback(iter, callback) {
			break
		}
	}

	if err := iter.Error(); err != nil {
		return LevelDBError.Wrap(err)
	}

	return nil
}

func (s *Storage) Batch() storage.Batch {
	return &leveldb.Batch{}
}

func (s *Storage) WriteBatch(batch storage.Batch) error {
	b, ok := batch.(*leveldb.Batch)
	if !ok {
		return WrongBatchError.AppendMessage("type=%T", batch)
	}

	s.Lock()
	defer s.Unlock()

	if s.db == nil {
		return DBClosedError
	}

	if err := s.db.Write(b, nil); err != nil {
		return LevelDBError.Wrap(err)
	}

	return nil
}

func iteratorCallback(iter leveldbIterator.Iterator, callback func([]byte, []byte) bool) bool {
	var key, value []byte
	{
		b := iter.Key()
		key = make([]byte, len(b))
		copy(key, b)
	}

	{
		b := iter.Value()
		value = make([]byte, len(b))
		copy(value, b)
	}

	return callback(key, value)
}
