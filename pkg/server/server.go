package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/definitions"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/bastiangx/wordsolve/pkg/thesaurus"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for puzzle queries
type Server struct {
	solver     *solver.Solver
	maxResults int
	cache      *HotCache
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
	out        *bufio.Writer
	log        *log.Logger
	requests   int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(s *solver.Solver, cfg *config.Config) *Server {
	return NewServerWithIO(s, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on the given streams.
func NewServerWithIO(s *solver.Solver, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		solver:     s,
		maxResults: cfg.Server.MaxResults,
		cache:      NewHotCache(cfg.Server.CacheSize),
		dec:        msgpack.NewDecoder(bufio.NewReader(r)),
		enc:        msgpack.NewEncoder(out),
		out:        out,
		log:        logger.New("server"),
	}
}

// Start serves requests until the input ends or ctx is done. A message that
// cannot be decoded ends the stream since the decoder cannot resync.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting Server.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req SolveRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "requests", s.requests, "cache", s.cache.Stats())
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.send(SolveError{Error: "malformed request", Code: CodeBadRequest})
			return fmt.Errorf("decode request: %w", err)
		}

		s.requests++
		if err := s.send(s.handleRequest(ctx, req)); err != nil {
			return err
		}
	}
}

// handleRequest answers a single request with a SolveResponse or SolveError.
func (s *Server) handleRequest(ctx context.Context, req SolveRequest) any {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	start := time.Now()

	results, grid, err := s.answer(ctx, req)
	if err != nil {
		code := errorCode(err)
		if code == CodeInternal {
			s.log.Errorf("Request %s (%s): %v", req.ID, req.Mode, err)
		} else {
			s.log.Debugf("Rejected request %s (%s): %v", req.ID, req.Mode, err)
		}
		return SolveError{ID: req.ID, Error: err.Error(), Code: code}
	}

	count := len(results)
	if limit := s.limit(req.Limit); limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []string{}
	}

	elapsed := time.Since(start)
	s.log.Debugf("Took [ %v ] for %s request %s", elapsed, req.Mode, req.ID)

	return SolveResponse{
		ID:        req.ID,
		Results:   results,
		Grid:      grid,
		Count:     count,
		TimeTaken: elapsed.Microseconds(),
	}
}

// limit picks the smaller of the request limit and the configured maximum.
// Zero means no limit.
func (s *Server) limit(requested int) int {
	switch {
	case requested <= 0:
		return s.maxResults
	case s.maxResults > 0 && requested > s.maxResults:
		return s.maxResults
	default:
		return requested
	}
}

// answer serves repeated requests from the cache. Errors are not cached.
func (s *Server) answer(ctx context.Context, req SolveRequest) ([]string, []string, error) {
	key := cacheKey(req)
	if a, ok := s.cache.Get(key); ok {
		s.log.Debugf("Cache hit for request %s", req.ID)
		return a.results, a.grid, nil
	}
	results, grid, err := s.solve(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	s.cache.Put(key, answer{results: results, grid: grid})
	return results, grid, nil
}

func (s *Server) solve(ctx context.Context, req SolveRequest) ([]string, []string, error) {
	switch req.Mode {
	case ModeLookup, "":
		q, err := solver.NewLookupQuery(req.Pattern, req.Letters, req.Target)
		if err != nil {
			return nil, nil, err
		}
		results, err := s.solver.Lookup(ctx, q)
		return match.Entries(results), nil, err

	case ModeJumble:
		q, err := solver.NewJumbleQuery(req.Letters, req.Found, req.Subset)
		if err != nil {
			return nil, nil, err
		}
		res, err := s.solver.Jumble(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		return match.Entries(res.Results), res.Grid.Rows(), nil

	case ModeAnagram:
		letters := req.Letters
		if letters == "" {
			letters = req.Pattern
		}
		results, err := s.solver.Anagram(letters)
		return results, nil, err

	case ModeRegex:
		results, err := s.solver.Regex(req.Pattern, req.Target)
		return results, nil, err

	case ModeDefine:
		results, err := s.solver.Define(req.Pattern)
		return results, nil, err

	case ModeThesaurus:
		results, err := s.solver.Synonyms(req.Target)
		return results, nil, err

	default:
		return nil, nil, fmt.Errorf("%w: unknown mode %q", solver.ErrInvalidQuery, req.Mode)
	}
}

// errorCode maps solver errors caused by the request to 400.
func errorCode(err error) int {
	for _, target := range []error{
		pattern.ErrInvalidPattern,
		pool.ErrInvalidAlphabet,
		pool.ErrLetterExhausted,
		thesaurus.ErrUnknownTerm,
		definitions.ErrNoDefinition,
		solver.ErrInvalidQuery,
		solver.ErrNoThesaurus,
	} {
		if errors.Is(err, target) {
			return CodeBadRequest
		}
	}
	return CodeInternal
}

// send encodes a response and flushes it so the client sees it right away.
func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
