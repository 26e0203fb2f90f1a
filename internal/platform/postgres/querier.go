// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx query methods shared by *pgxpool.Pool and pgx.Tx.
//
// # Purpose
//
// Stores accept a Querier instead of a concrete pool so that the same query
// code runs either on the shared pool or inside an open transaction. The
// brochure lock flow relies on this: it resolves attribute data through
// tx-bound stores so the persisted payload and the lock flip commit together.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// BeginQuerier is a Querier that can also open a transaction. *pgxpool.Pool
// starts a real transaction; pgx.Tx nests one via savepoints, so stores built
// on BeginQuerier stay atomic even when already running inside a transaction.
type BeginQuerier interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

var (
	_ Querier      = (*pgxpool.Pool)(nil)
	_ Querier      = (pgx.Tx)(nil)
	_ BeginQuerier = (*pgxpool.Pool)(nil)
	_ BeginQuerier = (pgx.Tx)(nil)
)
