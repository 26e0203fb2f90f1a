// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package brochure

import (
	stdctx "context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/internal/platform/database/schema"
	"github.com/bpetkov/modena/internal/platform/dberr"
	"github.com/bpetkov/modena/pkg/pagination"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectColumns is the shared projection for full-record reads.
func selectColumns() string {
	b := schema.BrochureBrochure
	return strings.Join([]string{
		b.ID, b.Kind, b.Title, b.SelectionMode, b.EditionIDs, b.OnlyDifferences,
		b.Language, b.IsSnapshot, b.Payload, b.LockedAt, b.LockedBy, b.CreatedAt, b.UpdatedAt,
	}, ", ")
}

func scanRecord(row pgx.Row) (*Brochure, error) {
	record := &Brochure{}
	err := row.Scan(
		&record.ID, &record.Kind, &record.Title, &record.SelectionMode,
		&record.EditionIDs, &record.OnlyDifferences, &record.Language,
		&record.IsSnapshot, &record.Payload, &record.LockedAt, &record.LockedBy,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (repository *PostgresRepository) Create(context stdctx.Context, record *Brochure) error {
	b := schema.BrochureBrochure
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, NOW(), NOW())
	`,
		b.Table,
		b.ID, b.Kind, b.Title, b.SelectionMode, b.EditionIDs, b.OnlyDifferences,
		b.Language, b.IsSnapshot, b.CreatedAt, b.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		record.ID, string(record.Kind), record.Title, string(record.SelectionMode),
		record.EditionIDs, record.OnlyDifferences, record.Language,
	)
	if err != nil {
		return dberr.Wrap(err, "create_brochure")
	}

	return nil
}

func (repository *PostgresRepository) List(context stdctx.Context, params pagination.Params) ([]*Brochure, int, error) {
	b := schema.BrochureBrochure

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s IS NULL`, b.Table, b.DeletedAt)

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_brochures")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s IS NULL
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, selectColumns(), b.Table, b.DeletedAt, b.CreatedAt)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_brochures")
	}
	defer rows.Close()

	records := make([]*Brochure, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_brochure")
		}
		records = append(records, record)
	}

	return records, total, nil
}

func (repository *PostgresRepository) Get(context stdctx.Context, id string) (*Brochure, error) {
	b := schema.BrochureBrochure
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		selectColumns(), b.Table, b.ID, b.DeletedAt)

	record, err := scanRecord(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_brochure")
	}

	return record, nil
}

func (repository *PostgresRepository) UpdateSelection(context stdctx.Context, record *Brochure) error {
	b := schema.BrochureBrochure
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1 AND %s IS NULL AND %s = false
	`,
		b.Table,
		b.SelectionMode, b.EditionIDs, b.OnlyDifferences, b.Language, b.UpdatedAt,
		b.ID, b.DeletedAt, b.IsSnapshot,
	)

	tag, err := repository.pool.Exec(context, query,
		record.ID, string(record.SelectionMode), record.EditionIDs,
		record.OnlyDifferences, record.Language,
	)
	if err != nil {
		return dberr.Wrap(err, "update_brochure_selection")
	}
	if tag.RowsAffected() == 0 {
		// Either gone or locked between the service check and this write.
		return apperr.NotFound("brochure " + record.ID)
	}

	return nil
}

// Lock computes and persists the snapshot in one REPEATABLE READ
// transaction. The row lock serializes concurrent lock attempts, and the
// isolation level guarantees the payload reflects a single point in time
// even while override writes land concurrently.
func (repository *PostgresRepository) Lock(context stdctx.Context, id string, lockedBy *string, compute ComputePayload) (*Brochure, error) {
	transaction, err := repository.pool.BeginTx(context, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, dberr.Wrap(err, "begin_lock_brochure")
	}
	defer transaction.Rollback(context)

	b := schema.BrochureBrochure
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL FOR UPDATE`,
		selectColumns(), b.Table, b.ID, b.DeletedAt)

	record, err := scanRecord(transaction.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_brochure_for_lock")
	}

	if record.IsSnapshot {
		return nil, apperr.Locked("Record is already locked; unlock it first")
	}

	// Compute against the transaction so the payload and the flag flip
	// commit together, or not at all.
	payload, err := compute(context, transaction, record)
	if err != nil {
		return nil, err
	}

	update := fmt.Sprintf(`
		UPDATE %s
		SET %s = true, %s = $2, %s = NOW(), %s = $3, %s = NOW()
		WHERE %s = $1
	`,
		b.Table,
		b.IsSnapshot, b.Payload, b.LockedAt, b.LockedBy, b.UpdatedAt,
		b.ID,
	)
	if _, err := transaction.Exec(context, update, id, payload, lockedBy); err != nil {
		return nil, dberr.Wrap(err, "persist_brochure_snapshot")
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_lock_brochure")
	}

	now := time.Now()
	record.IsSnapshot = true
	record.Payload = payload
	record.LockedAt = &now
	record.LockedBy = lockedBy

	return record, nil
}

func (repository *PostgresRepository) Unlock(context stdctx.Context, id string) error {
	b := schema.BrochureBrochure
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = false, %s = NULL, %s = NULL, %s = NULL, %s = NOW()
		WHERE %s = $1 AND %s IS NULL AND %s = true
	`,
		b.Table,
		b.IsSnapshot, b.Payload, b.LockedAt, b.LockedBy, b.UpdatedAt,
		b.ID, b.DeletedAt, b.IsSnapshot,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "unlock_brochure")
	}
	if tag.RowsAffected() == 0 {
		return apperr.Conflict("Record is not locked")
	}

	return nil
}

func (repository *PostgresRepository) SoftDelete(context stdctx.Context, id string) error {
	b := schema.BrochureBrochure
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		b.Table, b.DeletedAt, b.ID, b.DeletedAt)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_brochure")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("brochure " + id)
	}

	return nil
}
