package model

import (
	"errors"

	"github.com/lib/pq"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var ErrNotFound = sqlx.ErrNotFound

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

// IsDuplicate reports whether err is a unique-constraint violation on the
// (short_code, id) primary key. The ingestion side treats it as an
// already-committed insert whose acknowledgment was lost.
func IsDuplicate(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
