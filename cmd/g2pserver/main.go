// Command g2pserver exposes the G2P pipelines as a JSON REST API.
//
// Endpoints:
//
//	POST /api/phonemize   body: {"text":"...","lang":"zh"}
//	GET  /api/languages
//
// Configuration comes from flags, with defaults overridable through a .env
// file (ADDR, JIEBA_DICT).
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	g2p "github.com/tantk/kokoro-g2p"
	"github.com/tantk/kokoro-g2p/segment"
)

type phonemizeRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type phonemizeResponse struct {
	Phonemes string  `json:"phonemes"`
	Tokens   []int64 `json:"tokens"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// pipelines holds one immutable Pipeline per supported language, built once
// at startup and shared across requests.
type pipelines struct {
	byLang map[string]*g2p.Pipeline
}

func newPipelines(jiebaDict string) (*pipelines, error) {
	var opts []g2p.Option
	if jiebaDict != "" {
		seg, err := segment.NewJieba(jiebaDict)
		if err != nil {
			return nil, err
		}
		opts = append(opts, g2p.WithSegmenter(seg))
	}

	zh, err := g2p.New(g2p.Mandarin, opts...)
	if err != nil {
		return nil, err
	}
	es, err := g2p.New(g2p.Spanish)
	if err != nil {
		return nil, err
	}
	return &pipelines{byLang: map[string]*g2p.Pipeline{
		"zh": zh,
		"es": es,
	}}, nil
}

func (p *pipelines) lookup(code string) (*g2p.Pipeline, bool) {
	lang, err := g2p.ParseLanguage(code)
	if err != nil {
		return nil, false
	}
	pl, ok := p.byLang[lang.String()]
	return pl, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func handlePhonemize(p *pipelines) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
			return
		}
		var req phonemizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
		if req.Lang == "" {
			req.Lang = "zh"
		}
		pipeline, ok := p.lookup(req.Lang)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unsupported language " + req.Lang})
			return
		}

		start := time.Now()
		res := pipeline.Process(req.Text)
		log.Info().
			Str("lang", req.Lang).
			Int("chars", len([]rune(req.Text))).
			Int("tokens", len(res.Tokens)).
			Dur("elapsed", time.Since(start)).
			Msg("phonemize")

		writeJSON(w, http.StatusOK, phonemizeResponse{
			Phonemes: res.Phonemes,
			Tokens:   res.Tokens,
		})
	}
}

func handleLanguages(p *pipelines) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs := make([]string, 0, len(p.byLang))
		for code := range p.byLang {
			langs = append(langs, code)
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: langs})
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A missing .env is fine; flags and their defaults still apply.
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("ADDR", ":8080"), "listen address")
	jiebaDict := flag.String("jieba-dict", os.Getenv("JIEBA_DICT"), "path to jieba frequency dictionary")
	flag.Parse()

	p, err := newPipelines(*jiebaDict)
	if err != nil {
		log.Fatal().Err(err).Msg("build pipelines")
	}
	if *jiebaDict == "" {
		log.Warn().Msg("no jieba dictionary configured; Mandarin uses character-level segmentation")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/phonemize", handlePhonemize(p))
	mux.HandleFunc("/api/languages", handleLanguages(p))

	handler := cors.Default().Handler(mux)

	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
