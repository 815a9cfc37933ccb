package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"volley-training/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
)

// InTx runs fn inside one transaction; it commits when fn returns nil and rolls
// back otherwise, so a logical write lands completely or not at all.
func InTx(db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.Beginx()
	if err != nil {
		return Translate(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = multierr.Append(err, rbErr)
			}
			return
		}
		err = Translate(tx.Commit())
	}()

	return fn(tx)
}

// Exists reports whether table has a row whose idColumn equals id.
// table and idColumn are never user input.
func Exists(q sqlx.Queryer, table, idColumn string, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ?`, table, idColumn)

	var count int
	if err := sqlx.Get(q, &count, rebind(q, query), id); err != nil {
		return false, Translate(err)
	}
	return count > 0, nil
}

// MustExist is Exists turned into ErrReferentialIntegrity
func MustExist(q sqlx.Queryer, table, idColumn string, id int64, what string) error {
	ok, err := Exists(q, table, idColumn, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %d does not exist", models.ErrReferentialIntegrity, what, id)
	}
	return nil
}

type binder interface {
	Rebind(string) string
}

func rebind(q sqlx.Queryer, query string) string {
	if b, ok := q.(binder); ok {
		return b.Rebind(query)
	}
	return query
}

// ExpectRow turns an UPDATE or DELETE that touched nothing into ErrNotFound
func ExpectRow(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return Translate(err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, models.ErrNotFound)
	}
	return nil
}
