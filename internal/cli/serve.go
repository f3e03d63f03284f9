package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/bond"
	"github.com/matzehuels/bricklayer/pkg/build"
	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/export"
	"github.com/matzehuels/bricklayer/pkg/runstore"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// serveCommand creates the serve command exposing the simulation over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the simulation as an HTTP API",
		Long: `Expose the simulation as an HTTP API.

Endpoints:
  POST /walls             create a wall and its build session
  GET  /walls/{id}        current layout and placement state
  POST /walls/{id}/step   advance the build by one action
  POST /walls/{id}/run    run the build to completion and record it
  GET  /walls/{id}/stats  build statistics
  GET  /walls/{id}/svg    support graph rendered as SVG
  GET  /runs              recorded build runs

Sessions live in process memory; run records go to the local file history
or, with --redis, to a shared Redis instance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newStore(cmd, redisAddr)
			if err != nil {
				return err
			}
			defer store.Close()
			return c.serve(cmd.Context(), addr, store)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "record runs in Redis at this address")
	return cmd
}

func (c *CLI) serve(ctx context.Context, addr string, store runstore.Store) error {
	s := &server{cli: c, store: store, sessions: make(map[uuid.UUID]*buildSession)}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/walls", s.createWall)
	r.Get("/walls/{id}", s.getWall)
	r.Post("/walls/{id}/step", s.stepWall)
	r.Post("/walls/{id}/run", s.runWall)
	r.Get("/walls/{id}/stats", s.wallStats)
	r.Get("/walls/{id}/svg", s.wallSVG)
	r.Get("/runs", s.listRuns)

	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	c.Logger.Infof("listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// buildSession is one wall under construction, owned by the server.
type buildSession struct {
	mu      sync.Mutex
	variant bond.Variant
	seed    uint64
	builder *build.Builder
}

type server struct {
	cli      *CLI
	store    runstore.Store
	mu       sync.RWMutex
	sessions map[uuid.UUID]*buildSession
}

// createWallRequest mirrors the plan/build flags.
type createWallRequest struct {
	Variant  string `json:"variant"`
	Width    int    `json:"width"`
	Courses  int    `json:"courses"`
	Seed     uint64 `json:"seed"`
	Envelope struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"envelope"`
}

type wallResponse struct {
	ID       uuid.UUID      `json:"id"`
	State    string         `json:"state"`
	Envelope build.Envelope `json:"envelope"`
	Stats    build.Stats    `json:"stats"`
	Wall     wall.Snapshot  `json:"wall"`
}

func (s *server) createWall(w http.ResponseWriter, r *http.Request) {
	var req createWallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	variant, err := bond.ParseVariant(req.Variant)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Courses < 1 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "courses must be at least 1"))
		return
	}
	spec := wall.DefaultSpec()
	if req.Envelope.Width == 0 {
		req.Envelope.Width = 800
	}
	if req.Envelope.Height == 0 {
		req.Envelope.Height = 1300
	}

	generated, err := bond.Generate(variant, req.Width, req.Courses, bond.Params{Spec: spec, Seed: req.Seed})
	if err != nil {
		writeError(w, err)
		return
	}
	builder, err := build.New(generated, req.Envelope.Width, req.Envelope.Height)
	if err != nil {
		writeError(w, err)
		return
	}

	id := uuid.New()
	s.mu.Lock()
	s.sessions[id] = &buildSession{variant: variant, seed: req.Seed, builder: builder}
	s.mu.Unlock()
	s.cli.Logger.Info("created wall", "id", id, "variant", variant, "bricks", generated.BrickCount())

	writeJSON(w, http.StatusCreated, s.response(id, builder))
}

func (s *server) response(id uuid.UUID, b *build.Builder) wallResponse {
	return wallResponse{
		ID:       id,
		State:    b.State().String(),
		Envelope: b.Envelope(),
		Stats:    b.Stats(),
		Wall:     b.Wall().Snapshot(),
	}
}

// session resolves the {id} URL parameter to a build session.
func (s *server) session(w http.ResponseWriter, r *http.Request) (uuid.UUID, *buildSession, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid wall id"))
		return uuid.Nil, nil, false
	}
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNotFound, "wall %s not found", id))
		return uuid.Nil, nil, false
	}
	return id, sess, true
}

func (s *server) getWall(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, s.response(id, sess.builder))
}

type stepResponse struct {
	Placed   *wall.Ref      `json:"placed,omitempty"`
	Kind     string         `json:"kind"`
	State    string         `json:"state"`
	Envelope build.Envelope `json:"envelope"`
	Stats    build.Stats    `json:"stats"`
}

func (s *server) stepWall(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	ev, err := sess.builder.Step()
	if err != nil {
		writeError(w, err)
		return
	}
	resp := stepResponse{
		State:    sess.builder.State().String(),
		Envelope: ev.Envelope,
		Stats:    ev.Stats,
	}
	switch ev.Kind {
	case build.EventPlaced:
		resp.Kind = "placed"
		brick := ev.Brick
		resp.Placed = &brick
	case build.EventRepositioned:
		resp.Kind = "repositioned"
	case build.EventCompleted:
		resp.Kind = "completed"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) runWall(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	b := sess.builder
	stats, buildErr := b.Run(r.Context())
	generated := b.Wall()
	run := runstore.New(string(sess.variant), generated.Width, generated.Height,
		len(generated.Courses), sess.seed, stats, buildErr)
	if err := s.store.Save(r.Context(), run); err != nil {
		s.cli.Logger.Error("save run", "err", err)
	}
	if buildErr != nil {
		writeError(w, buildErr)
		return
	}
	writeJSON(w, http.StatusOK, s.response(id, b))
}

func (s *server) wallStats(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, sess.builder.Stats())
}

func (s *server) wallSVG(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	dot := export.ToDOT(sess.builder.Wall(), export.Options{Placed: true})
	sess.mu.Unlock()

	svg, err := export.RenderSVG(dot)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

func (s *server) listRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON error body: a machine-readable code plus a
// human-readable message.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeUnsatisfiableBond:
		status = http.StatusBadRequest
	case errors.ErrCodeInfeasible, errors.ErrCodeStuckEnvelope:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}
