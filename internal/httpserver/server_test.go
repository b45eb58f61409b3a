package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordhunt/internal/daily"
	"github.com/robalobadob/wordhunt/internal/store"
	"github.com/robalobadob/wordhunt/internal/words"
)

const testGrid = "abcdefghijklmnop"

func newTestServer(t *testing.T, cfg Config, dict ...string) *Server {
	t.Helper()
	if len(dict) == 0 {
		dict = []string{"ab", "af", "ap", "abcd", "jfgk", "zz"}
	}
	return New(words.New(dict), store.NewMemoryStore(8), cfg)
}

func do(t *testing.T, s *Server, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

type solveBody struct {
	Date    string              `json:"date"`
	Letters string              `json:"letters"`
	Grid    [][]string          `json:"grid"`
	Found   map[string][]string `json:"found"`
	Total   int                 `json:"total"`
	Cached  bool                `json:"cached"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) solveBody {
	t.Helper()
	var b solveBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(t, Config{}), "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestSolve(t *testing.T) {
	s := newTestServer(t, Config{})
	w := do(t, s, "POST", "/solve", `{"letters":"ABCD efgh ijkl mnop"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	b := decode(t, w)
	assert.Equal(t, testGrid, b.Letters)
	assert.Equal(t, []string{"a", "b", "c", "d"}, b.Grid[0])
	assert.Equal(t, []string{"ab", "af"}, b.Found["2"])
	assert.Equal(t, []string{"abcd", "jfgk"}, b.Found["4"])
	assert.Equal(t, 4, b.Total)
	assert.False(t, b.Cached)

	again := decode(t, do(t, s, "POST", "/solve", `{"letters":"abcdefghijklmnop"}`))
	assert.True(t, again.Cached)
	assert.Equal(t, b.Found, again.Found)
}

func TestSolveInvalidLetterCount(t *testing.T) {
	w := do(t, newTestServer(t, Config{}), "POST", "/solve", `{"letters":"abc 123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid_letter_count","count":3,"want":16}`, w.Body.String())
}

func TestSolveBadJSON(t *testing.T) {
	w := do(t, newTestServer(t, Config{}), "POST", "/solve", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveNoResults(t *testing.T) {
	w := do(t, newTestServer(t, Config{}, "xy"), "POST", "/solve", `{"letters":"`+testGrid+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	b := decode(t, w)
	assert.Equal(t, 0, b.Total)
	assert.Empty(t, b.Found)
}

func TestSetDictionaryInvalidatesCache(t *testing.T) {
	s := newTestServer(t, Config{}, "ab")
	first := decode(t, do(t, s, "POST", "/solve", `{"letters":"`+testGrid+`"}`))
	assert.Equal(t, 1, first.Total)

	s.SetDictionary(words.New([]string{"ab", "ef"}))
	second := decode(t, do(t, s, "POST", "/solve", `{"letters":"`+testGrid+`"}`))
	assert.False(t, second.Cached)
	assert.Equal(t, 2, second.Total)
	assert.Equal(t, 2, s.Dictionary().Len())
}

func TestDebugWords(t *testing.T) {
	s := newTestServer(t, Config{}, "ab", "cd")
	w := do(t, s, "GET", "/debug/words", "")
	var b map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.EqualValues(t, 2, b["words"])
	assert.Equal(t, s.Dictionary().Fingerprint(), b["fingerprint"])
}

func TestDaily(t *testing.T) {
	s := newTestServer(t, Config{DailySalt: "salt"}, "ab", "ba", "abc")
	w := do(t, s, "GET", "/daily?date=2026-10-15", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	b := decode(t, w)
	date, _ := daily.ParseDateKey("2026-10-15")
	assert.Equal(t, "2026-10-15", b.Date)
	assert.Equal(t, daily.Letters(date, "salt", s.Dictionary().Letters()), b.Letters)

	same := decode(t, do(t, s, "GET", "/daily?date=2026-10-15", ""))
	assert.Equal(t, b.Letters, same.Letters)
}

func TestDailyBadDate(t *testing.T) {
	w := do(t, newTestServer(t, Config{}), "GET", "/daily?date=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotFound(t *testing.T) {
	w := do(t, newTestServer(t, Config{}), "GET", "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found","path":"/nope"}`, w.Body.String())
}

func sign(t *testing.T, secret string, claims jwt.RegisteredClaims, method jwt.SigningMethod) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestAuth(t *testing.T) {
	s := newTestServer(t, Config{JWTSecret: "secret"})
	body := `{"letters":"` + testGrid + `"}`
	valid := jwt.RegisteredClaims{Subject: "tester", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	w := do(t, s, "POST", "/solve", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, s, "POST", "/solve", body, "Authorization", "Bearer "+sign(t, "wrong", valid, jwt.SigningMethodHS256))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	w = do(t, s, "POST", "/solve", body, "Authorization", "Bearer "+sign(t, "secret", expired, jwt.SigningMethodHS256))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	noSub := valid
	noSub.Subject = ""
	w = do(t, s, "POST", "/solve", body, "Authorization", "Bearer "+sign(t, "secret", noSub, jwt.SigningMethodHS256))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, s, "POST", "/solve", body, "Authorization", "Bearer "+sign(t, "secret", valid, jwt.SigningMethodHS256))
	assert.Equal(t, http.StatusOK, w.Code)

	// Diagnostics stay public.
	assert.Equal(t, http.StatusOK, do(t, s, "GET", "/health", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	w := do(t, newTestServer(t, Config{}), "OPTIONS", "/solve", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
