// Package api serves previews of the colour map strips over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/matt-g-everett/ledcolormap/render"
	"github.com/matt-g-everett/ledcolormap/stream"
	"github.com/matt-g-everett/ledcolormap/util"
)

// Limits on query parameters.
const (
	MaxWidth       = 4096
	MaxStripHeight = 512
	MaxSamples     = 4096
	defaultSamples = 16
)

// StripInfo describes one strip in the /strips listing.
type StripInfo struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Caption string `json:"caption"`
}

type Api struct {
	strips []stream.Strip
	config stream.HTTPConfig
	images *lru.Cache[string, []byte]
}

// NewApi creates an Api serving the given strips.
func NewApi(strips []stream.Strip, config stream.HTTPConfig) (*Api, error) {
	size := config.CacheSize
	if size < 1 {
		size = 1
	}
	images, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}

	a := new(Api)
	a.strips = strips
	a.config = config
	a.images = images
	return a, nil
}

// Router returns the HTTP handler for the API.
func (a *Api) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	if len(a.config.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.config.CORSOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/strips.png", a.stripsImageHandler)
	r.Get("/strips", a.stripsHandler)
	r.Get("/strips/{index}/colors", a.stripColorsHandler)

	return r
}

// Serve listens on the configured address until ctx is done.
func (a *Api) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: a.config.Addr, Handler: a.Router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", a.config.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *Api) stripsImageHandler(w http.ResponseWriter, r *http.Request) {
	width, err := intParam(r, "width", a.config.Width, 1, MaxWidth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := intParam(r, "height", a.config.StripHeight, render.CaptionHeight+1, MaxStripHeight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("%dx%d", width, height)
	data, ok := a.images.Get(key)
	if !ok {
		var buf bytes.Buffer
		if err := render.WritePNG(&buf, a.strips, width, height); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = buf.Bytes()
		a.images.Add(key, data)
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

func (a *Api) stripsHandler(w http.ResponseWriter, r *http.Request) {
	infos := make([]StripInfo, len(a.strips))
	for i, s := range a.strips {
		infos[i] = StripInfo{Index: i, Name: s.Name, Caption: s.Caption}
	}
	writeJSON(w, infos)
}

func (a *Api) stripColorsHandler(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= len(a.strips) {
		http.Error(w, "unknown strip", http.StatusNotFound)
		return
	}
	n, err := intParam(r, "n", defaultSamples, 1, MaxSamples)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cm := a.strips[index].ColorMap
	colors := make([]string, n)
	for i := range colors {
		d := 0.0
		if n > 1 {
			d = float64(i) / float64(n-1)
		}
		colors[i] = util.FormatColor(cm.GetColor(d))
	}
	writeJSON(w, colors)
}

func intParam(r *http.Request, name string, def, min, max int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, s)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be in [%d,%d], got %d", name, min, max, v)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encode response: %v", err)
	}
}
