package main

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

//go:embed frontend
var frontendFS embed.FS

const maxRequestSize = 64 << 10 // 64 KiB of JSON is plenty for a word list

// rateLimiter is a simple per-IP token bucket rate limiter.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*bucket
	rate     int           // tokens per interval
	interval time.Duration // refill interval
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
	}
	// Cleanup stale entries every minute.
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, b := range rl.visitors {
				if time.Since(b.lastSeen) > 5*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &bucket{tokens: rl.rate - 1, lastSeen: time.Now()}
		return true
	}

	// Refill tokens based on elapsed time.
	elapsed := time.Since(b.lastSeen)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		b.tokens += refill * rl.rate
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Server is the main HTTP server.
type Server struct {
	mux     *http.ServeMux
	store   *Store
	gemini  *GeminiClient
	sse     *Broadcaster
	genRL   *rateLimiter
	vocabRL *rateLimiter
}

// NewServer creates a configured HTTP server.
func NewServer(store *Store, gemini *GeminiClient) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		store:   store,
		gemini:  gemini,
		sse:     NewBroadcaster(),
		genRL:   newRateLimiter(30, time.Minute), // 30 generations/min per IP
		vocabRL: newRateLimiter(5, time.Minute),  // 5 Gemini calls/min per IP
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Generation API
	s.mux.HandleFunc("POST /api/wordsearch", s.handleCreateWordSearch)
	s.mux.HandleFunc("POST /api/crossword", s.handleCreateCrossword)
	s.mux.HandleFunc("POST /api/vocabulary", s.handleGenerateVocabulary)

	// Puzzle API
	s.mux.HandleFunc("GET /api/puzzles", s.handleListPuzzles)
	s.mux.HandleFunc("GET /api/puzzles/{id}", s.handleGetPuzzle)
	s.mux.HandleFunc("GET /api/events", s.handlePuzzleEvents)

	// Frontend static files
	frontendDir, _ := fs.Sub(frontendFS, "frontend")
	s.mux.Handle("GET /", http.FileServer(http.FS(frontendDir)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// --- Generation handlers ---

// POST /api/wordsearch — generate a word search from a word list.
func (s *Server) handleCreateWordSearch(w http.ResponseWriter, r *http.Request) {
	if !s.genRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	var req struct {
		Words []string `json:"words"`
		Size  string   `json:"size"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Words) == 0 {
		jsonError(w, "Field 'words' is required", http.StatusBadRequest)
		return
	}

	data, err := GenerateWordSearch(req.Words, req.Size, nil)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	puzzle := s.store.SavePuzzle(&Puzzle{Type: "wordsearch", WordSearch: data})
	s.broadcastCreated(puzzle)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(puzzle)
}

// POST /api/crossword — generate a crossword from word/clue pairs, or
// from a topic via Gemini when no vocabulary is supplied.
func (s *Server) handleCreateCrossword(w http.ResponseWriter, r *http.Request) {
	if !s.genRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	var req struct {
		Vocabulary []VocabEntry `json:"vocabulary"`
		Topic      string       `json:"topic"`
		Count      int          `json:"count"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if len(req.Vocabulary) == 0 {
		if topic == "" {
			jsonError(w, "Field 'vocabulary' or 'topic' is required", http.StatusBadRequest)
			return
		}
		if s.gemini == nil {
			jsonError(w, "Vocabulary generation is not configured", http.StatusServiceUnavailable)
			return
		}
		if !s.vocabRL.allow(r.RemoteAddr) {
			jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
			return
		}
		vocab, err := s.gemini.GenerateVocabulary(r.Context(), topic, req.Count)
		if err != nil {
			log.Printf("Gemini vocabulary error: %v", err)
			jsonError(w, "Vocabulary generation failed", http.StatusInternalServerError)
			return
		}
		req.Vocabulary = vocab
	}

	data, err := GenerateCrossword(req.Vocabulary)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	puzzle := s.store.SavePuzzle(&Puzzle{Type: "crossword", Topic: topic, Crossword: data})
	s.broadcastCreated(puzzle)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(puzzle)
}

// POST /api/vocabulary — generate word/clue pairs for a topic.
func (s *Server) handleGenerateVocabulary(w http.ResponseWriter, r *http.Request) {
	if s.gemini == nil {
		jsonError(w, "Vocabulary generation is not configured", http.StatusServiceUnavailable)
		return
	}

	if !s.vocabRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	var req struct {
		Topic string `json:"topic"`
		Count int    `json:"count"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Topic) == "" {
		jsonError(w, "Field 'topic' is required", http.StatusBadRequest)
		return
	}

	vocab, err := s.gemini.GenerateVocabulary(r.Context(), strings.TrimSpace(req.Topic), req.Count)
	if err != nil {
		log.Printf("Gemini vocabulary error: %v", err)
		jsonError(w, "Vocabulary generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vocab)
}

// --- Puzzle handlers ---

// GET /api/puzzles — list all puzzles, newest first.
func (s *Server) handleListPuzzles(w http.ResponseWriter, _ *http.Request) {
	puzzles := s.store.ListPuzzles()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(puzzles)
}

// GET /api/puzzles/{id} — get a single puzzle.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	puzzle := s.store.GetPuzzle(r.PathValue("id"))
	if puzzle == nil {
		jsonError(w, "Puzzle not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(puzzle)
}

// GET /api/events — SSE stream of puzzle_created events.
func (s *Server) handlePuzzleEvents(w http.ResponseWriter, r *http.Request) {
	s.sse.ServeSSE(w, r, feedPuzzles, func(c *client) {
		// Send the current puzzle list on connect.
		evt, _ := json.Marshal(map[string]any{
			"type":    "puzzle_list",
			"puzzles": s.store.ListPuzzles(),
		})
		c.ch <- string(evt)
	})
}

// --- Helpers ---

func (s *Server) broadcastCreated(p *Puzzle) {
	evt, _ := json.Marshal(map[string]string{
		"type":      "puzzle_created",
		"puzzle_id": p.ID,
		"puzzle":    p.Type,
	})
	s.sse.Broadcast(feedPuzzles, string(evt))
}

// writeEngineError maps generation failures to 422: the request was
// well-formed but the word set cannot produce a puzzle.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoValidWords),
		errors.Is(err, ErrNoWordsPlaced),
		errors.Is(err, ErrInsufficientIntersections):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		jsonError(w, "Puzzle generation failed", http.StatusInternalServerError)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
