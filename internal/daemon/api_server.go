package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"soundboard/internal/api"
	"soundboard/internal/config"
	"soundboard/internal/logging"
	"soundboard/internal/services"
	"soundboard/internal/upload"
)

const (
	manifestPath     = "/manifest.webmanifest"
	maxJSONBodyBytes = 64 << 10
	multipartMemory  = 8 << 20
)

type apiServer struct {
	bind       string
	token      string
	maxUpload  int64
	logger     *slog.Logger
	daemon     *Daemon
	handlerVal http.Handler

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	srv := &apiServer{
		bind:      strings.TrimSpace(cfg.Paths.APIBind),
		token:     strings.TrimSpace(cfg.Paths.APIToken),
		maxUpload: cfg.Upload.MaxBytes,
		logger:    logging.NewComponentLogger(logger, "api-server"),
		daemon:    d,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", srv.handlePage)
	mux.HandleFunc("GET "+manifestPath, srv.handleManifest)

	mux.HandleFunc("GET /api/status", srv.handleStatus)
	mux.HandleFunc("GET /api/board", srv.handleBoard)
	mux.HandleFunc("POST /api/filter", srv.handleFilter)
	mux.HandleFunc("POST /api/sounds/{id}/play", srv.handlePlay)
	mux.HandleFunc("POST /api/sounds", srv.handleUpload)
	mux.HandleFunc("POST /api/login", srv.handleLogin)
	mux.HandleFunc("POST /api/install", srv.handleInstall)

	mux.HandleFunc("POST /ui/filter", srv.handleUIFilter)
	mux.HandleFunc("POST /ui/play/{id}", srv.handleUIPlay)
	mux.HandleFunc("POST /ui/upload", srv.handleUIUpload)
	mux.HandleFunc("POST /ui/login", srv.handleUILogin)
	mux.HandleFunc("POST /ui/install", srv.handleUIInstall)

	srv.handlerVal = requestIDMiddleware(authMiddleware(srv.token, mux))
	return srv
}

func (s *apiServer) handler() http.Handler {
	return s.handlerVal
}

func (s *apiServer) start(ctx context.Context) error {
	if s.bind == "" {
		s.logger.Info("http server disabled (empty api_bind)")
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	server := &http.Server{
		Handler:           s.handlerVal,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.mu.Lock()
	s.listener = listener
	s.server = server
	s.mu.Unlock()

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorWithContext(s.logger, "api server error", "api_server_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "HTTP board unavailable"),
			)
		}
	}()

	go func() {
		<-ctx.Done()
		s.stop()
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

func (s *apiServer) address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) service() *api.BoardService {
	return s.daemon.Service()
}

func (s *apiServer) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.daemon.Status().DTO())
}

func (s *apiServer) handleBoard(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.service().View())
}

func (s *apiServer) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req api.FilterRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	view, err := s.service().ApplyFilter(req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *apiServer) handlePlay(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.service().Play(r.Context(), r.PathValue("id")))
}

func (s *apiServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	resp, err := s.upload(w, r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, resp)
}

func (s *apiServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.service().Login(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *apiServer) handleInstall(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.service().Install(boardURL(r)))
}

// upload parses a multipart form with fields name, category, and file.
func (s *apiServer) upload(w http.ResponseWriter, r *http.Request) (api.UploadResponse, error) {
	if s.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+multipartMemory)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return api.UploadResponse{}, services.Validation("api",
				fmt.Sprintf("audio files are limited to %.1f MiB", float64(s.maxUpload)/(1<<20)))
		}
		return api.UploadResponse{}, services.Validation("api", "invalid upload form")
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	var src *upload.Source
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		src = &upload.Source{FileName: header.Filename, Reader: file}
	case errors.Is(err, http.ErrMissingFile):
	default:
		return api.UploadResponse{}, services.Validation("api", "invalid upload form")
	}
	return s.service().Upload(r.Context(), r.FormValue("name"), r.FormValue("category"), src)
}

func (s *apiServer) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *apiServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := services.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.logger), "request failed", "api_request_failed",
			logging.Error(err),
			logging.String("path", r.URL.Path),
		)
	}
	s.writeError(w, status, services.UserMessage(err))
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}

func boardURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
