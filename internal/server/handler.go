package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/renato0307/gitdash/internal/domain"
	"github.com/renato0307/gitdash/internal/logging"
	"github.com/renato0307/gitdash/internal/paths"
	"github.com/renato0307/gitdash/internal/services"
)

// SnapshotReader serves the read endpoints
type SnapshotReader interface {
	Snapshot(ctx context.Context, repoPath string) (*domain.RepoSnapshot, error)
	Branches(ctx context.Context, repoPath string) (*domain.BranchList, error)
}

// Mutator serves the mutation endpoints
type Mutator interface {
	Checkout(ctx context.Context, repoPath string, params services.CheckoutParams) (*domain.MutationResult, error)
	Commit(ctx context.Context, repoPath, message string) (*domain.MutationResult, error)
	Push(ctx context.Context, repoPath string) (*domain.MutationResult, error)
	StageAll(ctx context.Context, repoPath string) (*domain.MutationResult, error)
	StageModifiedOnly(ctx context.Context, repoPath string) (*domain.MutationResult, error)
	StagePath(ctx context.Context, repoPath string, params services.StagePathParams) (*domain.MutationResult, error)
	TrackAllUntracked(ctx context.Context, repoPath string) (*domain.MutationResult, error)
	TrackPath(ctx context.Context, repoPath string, params services.TrackPathParams) (*domain.MutationResult, error)
	UnstageAll(ctx context.Context, repoPath string) (*domain.MutationResult, error)
}

// Handler provides the JSON API of the dashboard
type Handler struct {
	defaultRepo string
	mutations   Mutator
	snapshots   SnapshotReader
	version     func() string
}

// NewHandler creates a Handler. defaultRepo is used when a request names no repository;
// version computes the freshness token returned by /api/version.
func NewHandler(snapshots SnapshotReader, mutations Mutator, defaultRepo string, version func() string) *Handler {
	return &Handler{
		defaultRepo: defaultRepo,
		mutations:   mutations,
		snapshots:   snapshots,
		version:     version,
	}
}

// RegisterRoutes registers the API routes on the router.
// The 404 and 405 handlers are router-wide so unknown paths and wrong methods both answer JSON.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/version", h.Version).Methods(http.MethodGet)
	r.HandleFunc("/api/state", h.State).Methods(http.MethodGet)
	r.HandleFunc("/api/branches", h.Branches).Methods(http.MethodGet)

	r.HandleFunc("/api/checkout", h.Checkout).Methods(http.MethodPost)
	r.HandleFunc("/api/add-all", h.simpleMutation(h.mutations.StageAll)).Methods(http.MethodPost)
	r.HandleFunc("/api/stage-modified", h.simpleMutation(h.mutations.StageModifiedOnly)).Methods(http.MethodPost)
	r.HandleFunc("/api/track-all", h.simpleMutation(h.mutations.TrackAllUntracked)).Methods(http.MethodPost)
	r.HandleFunc("/api/unstage-all", h.simpleMutation(h.mutations.UnstageAll)).Methods(http.MethodPost)
	r.HandleFunc("/api/push", h.simpleMutation(h.mutations.Push)).Methods(http.MethodPost)
	r.HandleFunc("/api/commit", h.Commit).Methods(http.MethodPost)
	r.HandleFunc("/api/file-stage", h.FileStage).Methods(http.MethodPost)
	r.HandleFunc("/api/file-track", h.FileTrack).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	})
}

// Health returns a simple health check response.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Version returns the freshness token clients compare to detect stale assets.
// GET /api/version
func (h *Handler) Version(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, VersionResponse{Version: h.version()})
}

// State returns a freshly computed snapshot.
// GET /api/state?repo=<path>
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshots.Snapshot(r.Context(), h.repoPath(r.URL.Query().Get("repo")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

// Branches lists local branches.
// GET /api/branches?repo=<path>
func (h *Handler) Branches(w http.ResponseWriter, r *http.Request) {
	list, err := h.snapshots.Branches(r.Context(), h.repoPath(r.URL.Query().Get("repo")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// Checkout switches or creates a branch.
// POST /api/checkout {branch, create}
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeRequest(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMutation(w, r, req.Repo, func(ctx context.Context, repo string) (*domain.MutationResult, error) {
		return h.mutations.Checkout(ctx, repo, services.CheckoutParams{Branch: req.Branch, Create: req.Create})
	})
}

// Commit records the staged changes.
// POST /api/commit {message}
func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	var req CommitRequest
	if err := decodeRequest(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMutation(w, r, req.Repo, func(ctx context.Context, repo string) (*domain.MutationResult, error) {
		return h.mutations.Commit(ctx, repo, req.Message)
	})
}

// FileStage stages or unstages one file.
// POST /api/file-stage {file, stage}
func (h *Handler) FileStage(w http.ResponseWriter, r *http.Request) {
	var req FileStageRequest
	if err := decodeRequest(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMutation(w, r, req.Repo, func(ctx context.Context, repo string) (*domain.MutationResult, error) {
		return h.mutations.StagePath(ctx, repo, services.StagePathParams{Path: req.File, Stage: req.Stage})
	})
}

// FileTrack marks or unmarks one untracked file as tracked-pending.
// POST /api/file-track {file, track}
func (h *Handler) FileTrack(w http.ResponseWriter, r *http.Request) {
	var req FileTrackRequest
	if err := decodeRequest(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMutation(w, r, req.Repo, func(ctx context.Context, repo string) (*domain.MutationResult, error) {
		return h.mutations.TrackPath(ctx, repo, services.TrackPathParams{Path: req.File, Track: req.Track})
	})
}

func (h *Handler) simpleMutation(fn func(ctx context.Context, repoPath string) (*domain.MutationResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RepoRequest
		if err := decodeRequest(w, r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeMutation(w, r, req.Repo, fn)
	}
}

func (h *Handler) writeMutation(
	w http.ResponseWriter,
	r *http.Request,
	repo string,
	fn func(ctx context.Context, repoPath string) (*domain.MutationResult, error),
) {
	if repo == "" {
		repo = r.URL.Query().Get("repo")
	}
	result, err := fn(r.Context(), h.repoPath(repo))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// repoPath resolves the requested repository, falling back to the default
func (h *Handler) repoPath(requested string) string {
	if strings.TrimSpace(requested) == "" {
		return h.defaultRepo
	}
	abs, err := paths.ResolveRepoPath(requested)
	if err != nil {
		return requested
	}
	return abs
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Logger.Error("Failed to encode JSON response", "error", err)
	}
}

// writeError maps validation failures to 400 and everything else to 500
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if domain.IsValidationError(err) {
		status = http.StatusBadRequest
	}
	logging.FromContext(r.Context()).Warn("Request failed", "path", r.URL.Path, "status", status, "error", err)
	h.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
