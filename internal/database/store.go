package database

import (
	"context"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/errors"
	"github.com/cybertec-postgresql/tokscan/internal/logger"
	"github.com/cybertec-postgresql/tokscan/internal/results"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
	"github.com/jackc/pgx/v5"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tokscan_scans (
    id          bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    scanned_at  timestamptz NOT NULL,
    path        text NOT NULL,
    language    text NOT NULL,
    token_count integer NOT NULL,
    error       text
);

CREATE TABLE IF NOT EXISTS tokscan_tokens (
    scan_id     bigint NOT NULL REFERENCES tokscan_scans (id) ON DELETE CASCADE,
    seq         integer NOT NULL,
    category    text NOT NULL,
    value       text NOT NULL,
    full_match  text NOT NULL,
    byte_offset integer NOT NULL,
    line        integer NOT NULL,
    col         integer NOT NULL,
    PRIMARY KEY (scan_id, seq)
);`

var tokenColumns = []string{"scan_id", "seq", "category", "value", "full_match", "byte_offset", "line", "col"}

// EnsureSchema creates the token store tables if they do not exist
func (p *Pool) EnsureSchema(ctx context.Context) error {
	if _, err := p.Exec(ctx, schemaSQL); err != nil {
		return errors.NewStoreError("create schema", err)
	}
	return nil
}

// SaveResult stores every file of res in one transaction and returns the
// scan ID assigned to each file path. A file whose tokens cannot be stored
// as text is recorded as failed, without tokens, instead of aborting the batch.
func (p *Pool) SaveResult(ctx context.Context, res *results.Result) (map[string]int64, error) {
	scannedAt := res.Timestamp
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}

	ids := make(map[string]int64, len(res.Files))

	err := pgx.BeginFunc(ctx, p.Pool, func(tx pgx.Tx) error {
		for _, path := range res.GetFiles() {
			f := res.Files[path]
			tokens := f.Tokens

			var errText *string
			if f.Failed() {
				errText = &f.Error
			} else if err := f.CheckText(); err != nil {
				// text columns reject these values; keep the file as a failed scan
				logger.Warn("storing %s without tokens: %v", path, err)
				msg := err.Error()
				errText = &msg
				tokens = nil
			}

			var id int64
			err := tx.QueryRow(ctx,
				`INSERT INTO tokscan_scans (scanned_at, path, language, token_count, error)
				 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
				scannedAt, f.Path, f.Language, len(tokens), errText).Scan(&id)
			if err != nil {
				return errors.NewStoreError("insert scan "+path, err)
			}
			ids[path] = id

			if len(tokens) == 0 {
				continue
			}
			_, err = tx.CopyFrom(ctx, pgx.Identifier{"tokscan_tokens"}, tokenColumns,
				pgx.CopyFromSlice(len(tokens), func(i int) ([]any, error) {
					t := tokens[i]
					return []any{id, i, t.Category, t.Value, t.Match, t.Offset, t.Line, t.Column}, nil
				}))
			if err != nil {
				return errors.NewStoreError("copy tokens "+path, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// LoadTokens reads the tokens of one scan in their original order
func (p *Pool) LoadTokens(ctx context.Context, scanID int64) ([]lexer.Token, error) {
	rows, err := p.Query(ctx,
		`SELECT category, value, full_match, byte_offset, line, col
		 FROM tokscan_tokens WHERE scan_id = $1 ORDER BY seq`, scanID)
	if err != nil {
		return nil, errors.NewStoreError("load tokens", err)
	}

	tokens, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (lexer.Token, error) {
		var t lexer.Token
		err := row.Scan(&t.Category, &t.Value, &t.Match, &t.Offset, &t.Line, &t.Column)
		return t, err
	})
	if err != nil {
		return nil, errors.NewStoreError("load tokens", err)
	}
	return tokens, nil
}

// CategoryCounts aggregates the tokens of one scan by category
func (p *Pool) CategoryCounts(ctx context.Context, scanID int64) ([]results.CategoryCount, error) {
	rows, err := p.Query(ctx,
		`SELECT category, count(*)::int
		 FROM tokscan_tokens WHERE scan_id = $1
		 GROUP BY category ORDER BY count(*) DESC, category`, scanID)
	if err != nil {
		return nil, errors.NewStoreError("count categories", err)
	}

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[results.CategoryCount])
	if err != nil {
		return nil, errors.NewStoreError("count categories", err)
	}
	return counts, nil
}
