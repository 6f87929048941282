package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"strings"
	"sync"

	"soundboard/internal/api"
	"soundboard/internal/daemon"
	"soundboard/internal/logging"
	"soundboard/internal/services"
	"soundboard/internal/upload"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	connMu sync.Mutex
	conns  map[net.Conn]struct{}
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	logger = logging.NewComponentLogger(logger, "ipc")

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, logger: logger, ctx: services.WithClient(serverCtx, "ipc")}
	if err := rpcServer.RegisterName(ServiceName, srv); err != nil {
		cancel()
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
		conns:     make(map[net.Conn]struct{}),
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				if errors.Is(err, net.ErrClosed) {
					return
				}
				logging.WarnWithContext(s.logger, "accept failed", "ipc_accept_failed",
					logging.Error(err),
					logging.String(logging.FieldImpact, "IPC clients may fail to connect"),
					logging.String(logging.FieldErrorHint, "check socket permissions and restart the daemon if needed"))
				continue
			}
			s.track(conn, true)
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				defer s.track(c, false)
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

func (s *Server) track(conn net.Conn, add bool) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if add {
		s.conns[conn] = struct{}{}
		return
	}
	delete(s.conns, conn)
}

// Close stops the server, drops open connections, and removes the socket file.
// Connections are shut for reading only, so replies to calls already in
// flight (such as Stop) are still delivered before the codec closes.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.connMu.Lock()
	for conn := range s.conns {
		if rc, ok := conn.(interface{ CloseRead() error }); ok && rc.CloseRead() == nil {
			continue
		}
		_ = conn.Close()
	}
	s.connMu.Unlock()
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		logging.WarnWithContext(s.logger, "failed to remove socket", "ipc_socket_cleanup_failed",
			logging.String("socket", s.path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "stale IPC socket may block future starts"),
			logging.String(logging.FieldErrorHint, "remove the socket file manually or rerun soundboard stop"))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
}

// wireError flattens err to the text a CLI user should see.
func wireError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(services.UserMessage(err))
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	*resp = s.daemon.Status().DTO()
	return nil
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.logger.Info("daemon stop requested via IPC",
		logging.String(logging.FieldEventType, "daemon_stop_requested"))
	s.daemon.Stop()
	resp.Stopped = true
	return nil
}

func (s *service) Board(_ BoardRequest, resp *BoardResponse) error {
	resp.View = s.daemon.Service().View()
	return nil
}

func (s *service) SetQuery(req SetQueryRequest, resp *BoardResponse) error {
	return s.filter(api.FilterRequest{Query: &req.Query}, resp)
}

func (s *service) SelectCategory(req SelectCategoryRequest, resp *BoardResponse) error {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "all"
	}
	return s.filter(api.FilterRequest{Category: &category}, resp)
}

func (s *service) JustAdded(_ JustAddedRequest, resp *BoardResponse) error {
	return s.filter(api.FilterRequest{Action: api.FilterActionJustAdded}, resp)
}

func (s *service) Clear(_ ClearRequest, resp *BoardResponse) error {
	return s.filter(api.FilterRequest{Action: api.FilterActionClear}, resp)
}

func (s *service) Home(_ HomeRequest, resp *BoardResponse) error {
	return s.filter(api.FilterRequest{Action: api.FilterActionHome}, resp)
}

func (s *service) filter(req api.FilterRequest, resp *BoardResponse) error {
	view, err := s.daemon.Service().ApplyFilter(req)
	if err != nil {
		return wireError(err)
	}
	resp.View = view
	return nil
}

func (s *service) Play(req PlayRequest, resp *PlayResponse) error {
	*resp = s.daemon.Service().Play(s.ctx, req.ID)
	return nil
}

func (s *service) Upload(req UploadRequest, resp *UploadResponse) error {
	var src *upload.Source
	if path := strings.TrimSpace(req.Path); path != "" {
		src = &upload.Source{LocalPath: path}
	}
	out, err := s.daemon.Service().Upload(s.ctx, req.Name, req.Category, src)
	if err != nil {
		return wireError(err)
	}
	*resp = out
	return nil
}

func (s *service) Login(req LoginRequest, resp *LoginResponse) error {
	out, err := s.daemon.Service().Login(s.ctx, req)
	if err != nil {
		return wireError(err)
	}
	*resp = out
	return nil
}

func (s *service) Install(_ InstallRequest, resp *InstallResponse) error {
	url := ""
	if addr := s.daemon.APIAddress(); addr != "" {
		url = "http://" + addr + "/"
	}
	*resp = s.daemon.Service().Install(url)
	return nil
}
