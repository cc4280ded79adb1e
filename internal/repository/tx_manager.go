package repository

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionManager runs a function inside one storage transaction.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type gormTx struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &gormTx{db: db}
}

// RunInTx commits when fn returns nil and rolls back otherwise. Calls made
// with a context that already carries a transaction join it through a
// savepoint.
func (m *gormTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return GetDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// GetDB is the handle every gorm repository queries through: the open
// transaction on ctx when RunInTx started one, the shared pool otherwise.
func GetDB(ctx context.Context, pool *gorm.DB) *gorm.DB {
	db, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	if !ok {
		db = pool
	}
	return db.WithContext(ctx)
}

// inlineTx runs fn directly; used by the in-memory store whose writes are
// individually atomic.
type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}
