package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/shapesmith/shapesmith/pkg/cache"
	"github.com/shapesmith/shapesmith/pkg/errors"
	"github.com/shapesmith/shapesmith/pkg/render"
	"github.com/shapesmith/shapesmith/pkg/scene"
	"github.com/shapesmith/shapesmith/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string
}

// serveCommand creates the serve command, an HTTP bridge around the
// composition handler.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP composition bridge",
		Long: `Run an HTTP server exposing the composition handler.

Endpoints:
  POST /v1/messages                 compose a message, persist and return the scene
  GET  /v1/scenes/{id}              retrieve a stored scene
  GET  /v1/scenes/{id}/preview.svg  render an SVG preview (cached)
  GET  /v1/scenes                   list stored scenes, newest first
  GET  /healthz                     liveness probe

Scenes are stored in memory unless mongo_uri is configured. With
redis_addr configured, instances share one preview cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var st store.Store
			if cfg.MongoURI != "" {
				st, err = store.NewMongoStore(ctx, cfg.MongoURI)
				if err != nil {
					return err
				}
				c.Logger.Info("Using mongo scene store")
			} else {
				st = store.NewMemoryStore()
				c.Logger.Warn("Using in-memory scene store, scenes are lost on restart")
			}
			defer st.Close(ctx)

			var artifacts cache.Cache
			if cfg.RedisAddr != "" {
				artifacts, err = cache.NewRedisCache(ctx, cfg.RedisAddr)
				if err != nil {
					return err
				}
				c.Logger.Info("Using redis preview cache")
			} else {
				artifacts, err = newCache(false)
				if err != nil {
					return fmt.Errorf("init cache: %w", err)
				}
			}
			defer artifacts.Close()

			srv := newServer(scene.NewHandler(nil), st, artifacts, c.Logger)
			c.Logger.Infof("Listening on %s", opts.addr)
			return http.ListenAndServe(opts.addr, srv)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")

	return cmd
}

// server bridges HTTP requests to the composition handler.
type server struct {
	handler   *scene.Handler
	store     store.Store
	artifacts cache.Cache
	logger    *log.Logger
}

// newServer builds the chi router for the HTTP bridge.
func newServer(h *scene.Handler, st store.Store, artifacts cache.Cache, logger *log.Logger) http.Handler {
	s := &server{handler: h, store: st, artifacts: artifacts, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/messages", s.handleMessage)
		r.Get("/scenes", s.handleListScenes)
		r.Get("/scenes/{id}", s.handleGetScene)
		r.Get("/scenes/{id}/preview.svg", s.handlePreview)
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// messageResponse is the envelope returned by POST /v1/messages.
type messageResponse struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Scene     *scene.Scene `json:"scene"`
}

func (s *server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var msg scene.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidMessage, err, "decode message"))
		return
	}

	result, err := s.handler.Handle(r.Context(), msg)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec, err := s.store.Save(r.Context(), result)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Debugf("Composed scene %s with %d nodes", rec.ID, len(result.Nodes))
	writeJSON(w, http.StatusCreated, messageResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Scene:     rec.Scene,
	})
}

func (s *server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Scene:     rec.Scene,
	})
}

func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	key := cache.Key("preview", id)
	if svg, hit, err := s.artifacts.Get(r.Context(), key); err == nil && hit {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(svg)
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	svg := render.RenderSVG(rec.Scene, render.WithBackground("#ffffff"))
	_ = s.artifacts.Set(r.Context(), key, svg, cache.TTLArtifact)

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context(), 100)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]messageResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, messageResponse{ID: rec.ID, CreatedAt: rec.CreatedAt, Scene: rec.Scene})
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenes": out})
}

// errorResponse is the envelope for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)
	if status >= 500 {
		s.logger.Errorf("Request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidMessage,
		errors.ErrCodeInvalidConfig, errors.ErrCodeUnsupportedShape, errors.ErrCodeInvalidLink,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSceneNotFound, errors.ErrCodeDocumentNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeResourceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
