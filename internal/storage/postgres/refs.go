package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sportsync/internal/domain"
)

// RefStore resolves external references to internal entity ids. This is the
// lookup processors use for every foreign reference a document carries;
// domain.ErrNotFound means "not sourced yet", not failure.
type RefStore struct {
	db *sqlx.DB
}

func NewRefStore(db *sqlx.DB) *RefStore {
	return &RefStore{db: db}
}

func (s *RefStore) Resolve(ctx context.Context, kind domain.EntityKind, provider domain.Provider, urlHash string) (uuid.UUID, error) {
	query := `
		SELECT entity_id FROM external_refs
		WHERE entity_kind = $1 AND provider = $2 AND source_url_hash = $3`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query, kind, provider, urlHash)
	if err != nil {
		return uuid.Nil, translateErr(err)
	}
	return id, nil
}

// bindRef inserts the external reference row for an entity. Called by the
// entity stores inside the same transaction as the entity insert.
func bindRef(ctx context.Context, db *sqlx.DB, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO external_refs (entity_kind, entity_id, provider, source_url, source_url_hash)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := GetExecutor(ctx, db).ExecContext(ctx, query,
		ref.EntityKind, ref.EntityID, ref.Provider, ref.SourceURL, ref.SourceURLHash,
	)
	return translateErr(err)
}
