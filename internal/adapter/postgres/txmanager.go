package postgres

import (
	"context"
	"errors"
	"fmt"
)

// TxManager binds a transaction to a context for the duration of a callback.
type TxManager struct {
	db Beginner
}

func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic. A ctx that is already bound joins the
// outer transaction, so the outermost caller decides the outcome.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		rbErr := tx.Rollback(ctx)
		if p := recover(); p != nil {
			panic(p)
		}
		if rbErr != nil && err != nil {
			err = errors.Join(err, fmt.Errorf("postgres: rollback: %w", rbErr))
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	// A failed commit closes the tx as well.
	finished = true
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit tx: %w", err)
	}
	return nil
}
