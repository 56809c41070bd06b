package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/az-ai-labs/numwords/internal/cache"
	"github.com/az-ai-labs/numwords/numwords"

	"github.com/go-chi/chi/v5"
)

// mount registers all routes on r.
func (s *Server) mount(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, CodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Use(rateLimit(s.limiter))
		r.Get("/words/{number}", s.handleWords)
		r.Post("/words", s.handleWordsBatch)
		r.Get("/ordinal/{number}", s.handleOrdinal)
	})
}

type healthResponse struct {
	Status string `json:"status"`
}

type wordsResponse struct {
	Input string `json:"input"`
	Words string `json:"words"`
}

type ordinalResponse struct {
	Input   string `json:"input"`
	Ordinal string `json:"ordinal"`
}

type wordsRequest struct {
	Numbers []json.RawMessage `json:"numbers" validate:"required,min=1"`
	Ordinal bool              `json:"ordinal"`
}

type wordsItem struct {
	Input string    `json:"input"`
	Words string    `json:"words,omitempty"`
	Code  ErrorCode `json:"code,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, r, healthResponse{Status: "ok"})
}

// GET /v1/words/{number}?ordinal=true
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "number")

	ordinal := false
	if q := r.URL.Query().Get("ordinal"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			respondError(w, r, CodeValidation, fmt.Sprintf("ordinal must be a boolean, got %q", q))
			return
		}
		ordinal = v
	}

	words, err := s.words(input, ordinal)
	if err != nil {
		respondError(w, r, codeOf(err), err.Error())
		return
	}
	respondOK(w, r, wordsResponse{Input: input, Words: words})
}

// GET /v1/ordinal/{number}
func (s *Server) handleOrdinal(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "number")

	out, err := cache.Memoize(s.cache, cache.Key("digits", input, true), func() (string, error) {
		return numwords.ToOrdinal(input)
	})
	if err != nil {
		respondError(w, r, codeOf(err), err.Error())
		return
	}
	respondOK(w, r, ordinalResponse{Input: input, Ordinal: out})
}

// POST /v1/words
func (s *Server) handleWordsBatch(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := s.binder.bindJSON(w, r, &req); err != nil {
		var be *bindError
		if errors.As(err, &be) {
			respondError(w, r, be.code, be.msg)
			return
		}
		respondError(w, r, CodeJSON, err.Error())
		return
	}
	if limit := s.cfg.MaxBatch; limit > 0 && len(req.Numbers) > limit {
		respondError(w, r, CodeValidation, fmt.Sprintf("numbers must contain at most %d items", limit))
		return
	}

	items := make([]wordsItem, len(req.Numbers))
	for i, raw := range req.Numbers {
		items[i] = s.convertItem(i, raw, req.Ordinal)
	}
	respondOK(w, r, items)
}

// convertItem converts one element of a batch request. JSON strings go
// through the leading-integer parser; JSON numbers keep their full value,
// so 1e20 is out of range rather than "one".
func (s *Server) convertItem(i int, raw json.RawMessage, ordinal bool) wordsItem {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return wordsItem{Code: CodeValidation, Error: fmt.Sprintf("numbers[%d] must be a number or a numeric string", i)}
	}

	var (
		item wordsItem
		err  error
	)
	switch c := raw[0]; {
	case c == '"':
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return wordsItem{Input: string(raw), Code: CodeJSON, Error: err.Error()}
		}
		item.Input = str
		item.Words, err = s.words(str, ordinal)
	case c == '-' || (c >= '0' && c <= '9'):
		num := json.Number(raw)
		item.Input = num.String()
		item.Words, err = s.numberWords(num, ordinal)
	default:
		return wordsItem{Input: string(raw), Code: CodeValidation, Error: fmt.Sprintf("numbers[%d] must be a number or a numeric string", i)}
	}

	if err != nil {
		item.Code = codeOf(err)
		item.Error = err.Error()
	}
	return item
}

func (s *Server) words(input string, ordinal bool) (string, error) {
	return cache.Memoize(s.cache, cache.Key("words", input, ordinal), func() (string, error) {
		return numwords.ToWords(input, ordinal)
	})
}

// numberWords converts a JSON number literal. Integral literals that fit
// int64 convert exactly; anything else is read as float64, which covers
// exponents and fractions. Literals beyond float64 become ±Inf.
func (s *Server) numberWords(num json.Number, ordinal bool) (string, error) {
	return cache.Memoize(s.cache, cache.Key("number", num.String(), ordinal), func() (string, error) {
		if i, err := num.Int64(); err == nil {
			return numwords.ToWords(i, ordinal)
		}
		f, err := strconv.ParseFloat(num.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return "", &numwords.NotFiniteError{Value: num.String()}
		}
		return numwords.ToWords(f, ordinal)
	})
}
