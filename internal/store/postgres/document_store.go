// Package postgres stores catalog documents as JSONB rows and streams
// changes through LISTEN/NOTIFY.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// ChangeChannel is the NOTIFY channel fed by the documents trigger. The
// payload is the collection name.
const ChangeChannel = "documents_changed"

// orderExprs are the only sort keys backed by an index.
var orderExprs = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
	"order":     "(fields->>'order')::numeric NULLS LAST",
}

type documentRow struct {
	Collection string    `db:"collection"`
	ID         string    `db:"id"`
	Fields     []byte    `db:"fields"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r *documentRow) toDomain() (domain.StoredDocument, error) {
	doc := domain.StoredDocument{Collection: r.Collection, ID: r.ID, UpdatedAt: r.UpdatedAt}
	if err := json.Unmarshal(r.Fields, &doc.Fields); err != nil {
		return doc, fmt.Errorf("decoding %s/%s: %w", r.Collection, r.ID, err)
	}
	if doc.Fields == nil {
		doc.Fields = map[string]any{}
	}
	return doc, nil
}

type documentStore struct {
	db           *sqlx.DB
	pollInterval time.Duration
}

// NewDocumentStore creates a PostgreSQL-backed DocumentStore.
func NewDocumentStore(db *sqlx.DB) port.DocumentStore {
	return &documentStore{db: db, pollInterval: 30 * time.Second}
}

// OrderClause maps a document field to its ORDER BY expression.
func OrderClause(orderBy string) (string, error) {
	if orderBy == "" {
		return "", nil
	}
	expr, ok := orderExprs[orderBy]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrIndexUnavailable, orderBy)
	}
	return " ORDER BY " + expr + ", id", nil
}

func (s *documentStore) List(ctx context.Context, collection, orderBy string) ([]domain.StoredDocument, error) {
	order, err := OrderClause(orderBy)
	if err != nil {
		return nil, err
	}
	var rows []documentRow
	err = s.db.SelectContext(ctx, &rows,
		`SELECT collection, id, fields, created_at, updated_at FROM documents WHERE collection = $1`+order, collection)
	if err != nil {
		return nil, fmt.Errorf("documentStore.List: %w: %w", domain.ErrPersistence, err)
	}
	docs := make([]domain.StoredDocument, 0, len(rows))
	for i := range rows {
		doc, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("documentStore.List: %w: %w", domain.ErrPersistence, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *documentStore) Get(ctx context.Context, collection, id string) (*domain.StoredDocument, error) {
	var row documentRow
	err := s.db.GetContext(ctx, &row,
		`SELECT collection, id, fields, created_at, updated_at FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentStore.Get: %w: %w", domain.ErrPersistence, err)
	}
	doc, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("documentStore.Get: %w: %w", domain.ErrPersistence, err)
	}
	return &doc, nil
}

func (s *documentStore) Save(ctx context.Context, collection, id string, fields map[string]any, opts port.SaveOptions) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("documentStore.Save: encoding fields: %w", err)
	}

	update := `EXCLUDED.fields`
	if opts.Merge {
		update = `documents.fields || EXCLUDED.fields`
	}
	query := `INSERT INTO documents (collection, id, fields, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (collection, id) DO UPDATE SET fields = ` + update + `, updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, collection, id, payload); err != nil {
		return fmt.Errorf("documentStore.Save: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (s *documentStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return fmt.Errorf("documentStore.Delete: %w: %w", domain.ErrPersistence, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Subscribe holds one connection in LISTEN mode for the lifetime of the
// subscription. Notifications for other collections are ignored. Every
// pollInterval the collection's version is compared with the last delivered
// snapshot, and only a mismatch (a dropped notification) triggers a refresh.
func (s *documentStore) Subscribe(ctx context.Context, collection string, onChange port.ChangeFunc) (func(), error) {
	docs, err := s.List(ctx, collection, "")
	if err != nil {
		return nil, err
	}
	onChange(docs)

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("documentStore.Subscribe: %w: %w", domain.ErrPersistence, err)
	}

	subCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer conn.Close()
		err := conn.Raw(func(driverConn any) error {
			return s.listen(subCtx, driverConn.(*stdlib.Conn), collection, versionOf(docs), onChange)
		})
		if err != nil && subCtx.Err() == nil {
			log.Printf("documentStore.Subscribe: %s listener stopped: %v", collection, err)
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-subCtx.Done():
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}, nil
}

// snapshotVersion identifies a collection state cheaply: inserts and deletes
// change the count, saves bump the newest updated_at.
type snapshotVersion struct {
	Count   int
	Updated time.Time
}

func (v snapshotVersion) same(o snapshotVersion) bool {
	return v.Count == o.Count && v.Updated.Equal(o.Updated)
}

func versionOf(docs []domain.StoredDocument) snapshotVersion {
	v := snapshotVersion{Count: len(docs)}
	for _, d := range docs {
		if d.UpdatedAt.After(v.Updated) {
			v.Updated = d.UpdatedAt
		}
	}
	return v
}

func (s *documentStore) version(ctx context.Context, collection string) (snapshotVersion, error) {
	var v snapshotVersion
	var updated sql.NullTime
	err := s.db.QueryRowxContext(ctx,
		`SELECT count(*), max(updated_at) FROM documents WHERE collection = $1`, collection).
		Scan(&v.Count, &updated)
	if err != nil {
		return v, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if updated.Valid {
		v.Updated = updated.Time
	}
	return v, nil
}

func (s *documentStore) listen(ctx context.Context, c *stdlib.Conn, collection string, last snapshotVersion, onChange port.ChangeFunc) error {
	pc := c.Conn()
	if _, err := pc.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer func() {
		unlistenCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = pc.Exec(unlistenCtx, "UNLISTEN "+ChangeChannel)
	}()

	for {
		waitCtx, cancel := context.WithTimeout(ctx, s.pollInterval)
		n, err := pc.WaitForNotification(waitCtx)
		cancel()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if n != nil && n.Payload != collection {
			continue
		}
		if n == nil {
			v, err := s.version(ctx, collection)
			if err != nil {
				log.Printf("documentStore.Subscribe: checking %s: %v", collection, err)
				continue
			}
			if v.same(last) {
				continue
			}
		}

		docs, err := s.List(ctx, collection, "")
		if err != nil {
			log.Printf("documentStore.Subscribe: refreshing %s: %v", collection, err)
			continue
		}
		last = versionOf(docs)
		onChange(docs)
	}
}
