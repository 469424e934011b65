package employee

import (
	"testing"
	"time"
)

// SetNowFunc swaps the audit clock for the duration of a test.
func SetNowFunc(t testing.TB, f func() time.Time) {
	t.Helper()
	old := nowFunc
	nowFunc = f
	t.Cleanup(func() { nowFunc = old })
}

var MapRepositoryError = mapRepositoryError
