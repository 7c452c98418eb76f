// file: internals/features/attendance/school/repository/school_repository_test.go
package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))

	// pesan driver postgres untuk pelanggaran 23505
	assert.True(t, isUniqueViolation(errors.New(
		`ERROR: duplicate key value violates unique constraint "uq_schools_number" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: schools.school_number")))
}
