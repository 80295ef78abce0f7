package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordle-solver/solver"
	"github.com/powellquiring/wordle-solver/wordle"
)

var testWords = []string{
	"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal", "evade", "naval", "serve",
	"heath", "dwarf", "model", "karma", "stink", "grade", "quiet", "bench", "abate", "feign",
	"sword", "crane", "these", "geese", "speed", "abide", "there", "eerie", "heron", "petal",
}

func newServer(t *testing.T) (*Server, *solver.Solver) {
	t.Helper()
	d, err := wordle.NewDictionaryFromStrings(testWords)
	require.NoError(t, err)
	s, err := solver.New(context.Background(), d, zerolog.Nop())
	require.NoError(t, err)
	return New(s, zerolog.Nop(), 5), s
}

func get(t *testing.T, srv *Server, target string, v any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	if v != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newServer(t)
	var res healthRes
	rec := get(t, srv, "/health", &res)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, healthRes{OK: true, Words: len(testWords)}, res)
}

func TestSuggest(t *testing.T) {
	srv, s := newServer(t)
	var res suggestRes
	rec := get(t, srv, "/suggest?guess=sword:*****&max=3", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "collecting", res.Outcome)
	assert.Equal(t, 8, res.Candidates)

	want, err := s.Suggest([]wordle.GuessRecord{{Word: wordle.MustParseWord("sword")}}, 3)
	require.NoError(t, err)
	require.Len(t, res.Words, len(want.Words))
	for i, scored := range want.Words {
		assert.Equal(t, scored.Word.String(), res.Words[i].Word)
		assert.Equal(t, scored.Score, res.Words[i].Entropy)
	}
}

func TestSuggestDefaults(t *testing.T) {
	srv, _ := newServer(t)
	var res suggestRes
	rec := get(t, srv, "/suggest", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, res.Words, 5)
	assert.Equal(t, len(testWords), res.Candidates)

	rec = get(t, srv, "/suggest?guess=crane:**y*y&guess=sword:*****", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "resolved", res.Outcome)
	assert.Equal(t, "petal", res.Words[0].Word)

	res = suggestRes{}
	rec = get(t, srv, "/suggest?guess=zzzzz:y****", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "exhausted", res.Outcome)
	assert.Empty(t, res.Words)
}

func TestSuggestBadInput(t *testing.T) {
	srv, _ := newServer(t)
	for _, target := range []string{
		"/suggest?guess=crane:gq***",
		"/suggest?guess=crane",
		"/suggest?guess=cr4ne:*****",
		"/suggest?max=-1",
		"/suggest?max=lots",
	} {
		var res map[string]string
		rec := get(t, srv, target, &res)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.NotEmpty(t, res["error"], target)
	}
}

func TestEntropy(t *testing.T) {
	srv, s := newServer(t)
	var res scoredWord
	rec := get(t, srv, "/entropy/crane", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	want, _ := s.Table().Score(wordle.MustParseWord("crane"))
	assert.Equal(t, scoredWord{Word: "crane", Entropy: want}, res)

	rec = get(t, srv, "/entropy/zebra", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = get(t, srv, "/entropy/toolong", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = get(t, srv, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
