package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"volley-training/internal/models"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// resultsTable owns the tally checks; other CHECK failures are plain bad input.
const resultsTable = "drill_results"

// Translate maps driver errors onto the domain error kinds. Errors that are
// already domain errors pass through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505":
			return fmt.Errorf("%w: %s", models.ErrDuplicateSlot, pqErr.Message)
		case pqErr.Code == "23503":
			return fmt.Errorf("%w: %s", models.ErrReferentialIntegrity, pqErr.Message)
		case pqErr.Code == "23514" && pqErr.Table == resultsTable:
			return fmt.Errorf("%w: %s", models.ErrInvalidTally, pqErr.Message)
		case pqErr.Code == "23514":
			return fmt.Errorf("%w: %s", models.ErrInvalidInput, pqErr.Message)
		case pqErr.Code.Class() == "08", pqErr.Code.Class() == "57":
			return fmt.Errorf("%w: %s", models.ErrStoreUnavailable, pqErr.Message)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", models.ErrDuplicateSlot, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %v", models.ErrReferentialIntegrity, err)
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			// sqlite names the failed constraint, not its table
			if strings.Contains(liteErr.Error(), resultsTable+"_") {
				return fmt.Errorf("%w: %v", models.ErrInvalidTally, err)
			}
			return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
		}
		if sqliteUnavailable(liteErr.Code()) {
			return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
		}
	}

	return err
}

// sqliteUnavailable matches extended codes such as SQLITE_IOERR_READ by their
// primary code in the low byte.
func sqliteUnavailable(code int) bool {
	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
		return true
	}
	return false
}
