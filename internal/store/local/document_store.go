// Package local is a file-backed document store for single-node setups and
// development. Subscriptions are delivered in-process.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

type subscriber struct {
	collection string
	fn         port.ChangeFunc
}

// DocumentStore keeps every collection in memory and rewrites one JSON file
// after each write.
type DocumentStore struct {
	path string

	mu     sync.RWMutex
	data   map[string]map[string]domain.StoredDocument
	subs   map[int]subscriber
	nextID int
	now    func() time.Time
}

// NewDocumentStore loads path if it exists. An empty path keeps everything
// in memory.
func NewDocumentStore(path string) (*DocumentStore, error) {
	s := &DocumentStore{
		path: path,
		data: map[string]map[string]domain.StoredDocument{},
		subs: map[int]subscriber{},
		now:  func() time.Time { return time.Now().UTC() },
	}
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	return s, nil
}

// List sorts by any field present in the documents. Documents missing the
// field sort last.
func (s *DocumentStore) List(ctx context.Context, collection, orderBy string) ([]domain.StoredDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	docs := s.snapshotLocked(collection)
	s.mu.RUnlock()

	if orderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			return lessField(docs[i].Fields[orderBy], docs[j].Fields[orderBy])
		})
	}
	return docs, nil
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*domain.StoredDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.data[collection][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc.Fields = copyFields(doc.Fields)
	return &doc, nil
}

func (s *DocumentStore) Save(ctx context.Context, collection, id string, fields map[string]any, opts port.SaveOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	coll, ok := s.data[collection]
	if !ok {
		coll = map[string]domain.StoredDocument{}
		s.data[collection] = coll
	}
	doc := coll[id]
	if !opts.Merge || doc.Fields == nil {
		doc.Fields = map[string]any{}
	} else {
		doc.Fields = copyFields(doc.Fields)
	}
	for k, v := range fields {
		doc.Fields[k] = v
	}
	doc.Collection, doc.ID, doc.UpdatedAt = collection, id, s.now()
	coll[id] = doc
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("localStore.Save: %w: %w", domain.ErrPersistence, err)
	}
	s.notify(collection)
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if _, ok := s.data[collection][id]; !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(s.data[collection], id)
	err := s.persistLocked()
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("localStore.Delete: %w: %w", domain.ErrPersistence, err)
	}
	s.notify(collection)
	return nil
}

// Subscribe calls onChange synchronously with the current snapshot, then
// after every write to the collection.
func (s *DocumentStore) Subscribe(ctx context.Context, collection string, onChange port.ChangeFunc) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = subscriber{collection: collection, fn: onChange}
	docs := s.snapshotLocked(collection)
	s.mu.Unlock()

	onChange(docs)

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
	go func() {
		<-ctx.Done()
		unsubscribe()
	}()
	return unsubscribe, nil
}

func (s *DocumentStore) notify(collection string) {
	s.mu.RLock()
	var fns []port.ChangeFunc
	for _, sub := range s.subs {
		if sub.collection == collection {
			fns = append(fns, sub.fn)
		}
	}
	docs := s.snapshotLocked(collection)
	s.mu.RUnlock()

	for _, fn := range fns {
		cp := make([]domain.StoredDocument, len(docs))
		copy(cp, docs)
		fn(cp)
	}
}

// snapshotLocked returns the collection sorted by ID.
func (s *DocumentStore) snapshotLocked(collection string) []domain.StoredDocument {
	coll := s.data[collection]
	docs := make([]domain.StoredDocument, 0, len(coll))
	for _, d := range coll {
		d.Fields = copyFields(d.Fields)
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// persistLocked writes to a temp file and renames it over the target.
func (s *DocumentStore) persistLocked() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Printf("localStore.persist: rename failed: %v", err)
		return err
	}
	return nil
}

func copyFields(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// lessField orders numbers before strings before anything else; nil last.
func lessField(a, b any) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch av := a.(type) {
	case float64:
		return av < toFloat(b)
	case int:
		return float64(av) < toFloat(b)
	case string:
		return av < b.(string)
	}
	return false
}

func rank(v any) int {
	switch v.(type) {
	case float64, int:
		return 0
	case string:
		return 1
	case nil:
		return 3
	default:
		return 2
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}
