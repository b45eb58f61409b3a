// internal/daily/daily.go
//
// Deterministic "grid of the day".
// Each of the 16 cells is drawn from a letter pool with HMAC-SHA256(salt, "YYYY-MM-DD|i"),
// so every server with the same salt and dictionary serves the same grid for a date.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/wordhunt/internal/grid"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD key as a UTC date.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Letters returns the 16 grid letters for date, drawn from pool.
// Letters that appear often in the pool appear often in grids. An empty pool yields "".
func Letters(date time.Time, salt string, pool []rune) string {
	if len(pool) == 0 {
		return ""
	}
	dk := DateKey(date)
	var b strings.Builder
	for i := 0; i < grid.Cells; i++ {
		b.WriteRune(pool[index(salt, dk+"|"+strconv.Itoa(i), len(pool))])
	}
	return b.String()
}

// index maps HMAC(salt, msg) onto [0, n).
func index(salt, msg string, n int) int {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(msg))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
