package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/finsheet/internal/model"
	"github.com/stretchr/testify/require"
)

// RowByID returns the row with the given id and fails the test when it is
// missing.
func RowByID(t *testing.T, rows []model.Row, id string) model.Row {
	t.Helper()
	for _, row := range rows {
		if row.ID == id {
			return row
		}
	}
	require.Failf(t, "row not found", "no row with id %q among %d rows", id, len(rows))
	return model.Row{}
}

// AssertLogged checks that a log message was written by either the text or
// the JSON handler.
func AssertLogged(t *testing.T, logs *SafeBuffer, msg string) {
	t.Helper()
	require.True(t,
		strings.Contains(logs.String(), msg),
		"expected log message %q was not found in logs", msg,
	)
}
