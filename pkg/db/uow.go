package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UOW struct {
	Pool *pgxpool.Pool
	Tx   pgx.Tx
}

func (u *UOW) Begin() (pgx.Tx, error) {
	tx, err := u.Pool.BeginTx(context.Background(), pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("can't begin tx, %v", err)
	}
	u.Tx = tx
	return u.Tx, nil
}

func (u *UOW) Commit() error {
	if u.Tx == nil {
		return fmt.Errorf("transaction is not started yet")
	}
	return u.Tx.Commit(context.Background())
}

func (u *UOW) Rollback() error {
	if u.Tx == nil {
		return fmt.Errorf("transaction is not started yet")
	}
	return u.Tx.Rollback(context.Background())
}

// Finalize commits when *err is nil and rolls back otherwise. Meant to be
// deferred right after Begin, with the caller's named error.
func (u *UOW) Finalize(err *error) {
	if u.Tx == nil {
		return
	}
	if *err != nil {
		_ = u.Rollback()
		return
	}
	if commitErr := u.Commit(); commitErr != nil {
		*err = commitErr
	}
}

type UOWFactory struct {
	Pool *pgxpool.Pool
}

func (u *UOWFactory) GetUoW() *UOW {
	return &UOW{
		Pool: u.Pool,
	}
}

func NewUoWFactory(pool *pgxpool.Pool) *UOWFactory {
	return &UOWFactory{
		Pool: pool,
	}
}
