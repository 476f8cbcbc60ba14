// Package repokit provides shared seams and helpers for repository code
package repokit

import (
	"context"

	"mingle/internal/platform/store"
)

// Queryer is the minimal read and write surface SQL repos bind to
type Queryer = store.RowQuerier

// TxRunner executes a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows is a query result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag is the result of a data-modifying command
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on the provided TxRunner
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
