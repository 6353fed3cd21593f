// Package viewer is a host-renderer adapter that streams frame snapshots to
// websocket clients as JSON. It exists so a browser (or any ws client) can
// act as the external renderer without the runtime linking a GPU backend.
package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nexgo/runtime/internal/render"
)

const clientBuffer = 8

// Server implements render.Renderer over websocket. Frames that a slow
// client cannot keep up with are dropped for that client; the loop never
// blocks on a connection.
type Server struct {
	addr string
	log  *zap.Logger

	upgrader websocket.Upgrader
	httpSrv  *http.Server
	ln       net.Listener

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	out  chan []byte
	conn *websocket.Conn
}

func NewServer(addr string, log *zap.Logger) *Server {
	return &Server{
		addr: addr,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 32 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // local viewer
		},
		clients: make(map[*client]struct{}),
	}
}

// Init binds the listen address and starts serving /ws.
func (s *Server) Init() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.httpSrv = &http.Server{Handler: mux}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("viewer server error", zap.Error(err))
		}
	}()

	s.log.Info("viewer listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Render broadcasts one frame to every attached client.
func (s *Server) Render(f *render.Frame) {
	b, err := json.Marshal(f)
	if err != nil {
		s.log.Error("marshal frame", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.out <- b:
		default:
			// Client is behind; drop this frame for it.
		}
	}
}

// Shutdown closes the listener and every client connection.
func (s *Server) Shutdown() {
	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		close(c.out)
		delete(s.clients, c)
	}
	s.log.Info("viewer shut down")
}

// Addr returns the bound listen address, valid after Init.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// ClientCount returns the number of attached viewers.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}

	c := &client{out: make(chan []byte, clientBuffer), conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	s.log.Info("viewer attached", zap.String("remote", conn.RemoteAddr().String()))

	// Writer: frame stream to this client.
	go func() {
		for b := range c.out {
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				break
			}
		}
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
			time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	// Reader: viewers send nothing meaningful; read until the peer goes away
	// so we notice the disconnect.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		s.mu.Lock()
		if _, ok := s.clients[c]; ok {
			close(c.out)
			delete(s.clients, c)
		}
		s.mu.Unlock()
		s.log.Info("viewer detached", zap.String("remote", conn.RemoteAddr().String()))
	}()
}
