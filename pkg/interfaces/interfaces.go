package interfaces

import "github.com/jackc/pgx/v5"

type UoW interface {
	Begin() (pgx.Tx, error)
	Commit() error
	Rollback() error
	Finalize(err *error)
}
