// Package netservice serves bitset algebra operations over WebSocket,
// upgrading each HTTP connection to a long-lived request/response socket.
package netservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"bitset"
	"bitset/internal/errs"
	"bitset/internal/registry"
	"bitset/internal/store"
)

// Request is the JSON message a client sends to request an algebra
// operation or a batched reduction.
type Request struct {
	Op      string   `json:"op"`                // "union", "intersect", "difference", "symdiff", "reduce"
	A       string   `json:"a,omitempty"`       // handle of the left operand
	B       string   `json:"b,omitempty"`       // handle of the right operand
	Names   []string `json:"names,omitempty"`   // store-backed names to fold, for "reduce"
	Reducer string   `json:"reducer,omitempty"` // any of the four algebra ops (default "union"), for "reduce"
}

// Response carries either a freshly registered result handle or an error
// message back to the client.
type Response struct {
	Handle string `json:"handle,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Server upgrades HTTP connections to WebSocket and dispatches Requests
// against a shared Registry, optionally pulling named sets from a Store.
type Server struct {
	Registry *registry.Registry
	Store    *store.Store // optional; nil disables "reduce"

	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewServer builds a Server backed by reg (required) and st (optional).
func NewServer(reg *registry.Registry, st *store.Store) *Server {
	return &Server{
		Registry: reg,
		Store:    st,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: slog.Default(),
	}
}

// ServeHTTP implements http.Handler, upgrading the connection and serving
// one Request/Response exchange per inbound message until the client
// closes the socket.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		resp := s.handle(ctx, req)
		cancel()
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

func (s *Server) handle(ctx context.Context, req Request) Response {
	if req.Op == "reduce" {
		return s.handleReduce(ctx, req)
	}

	a, err := s.Registry.Get(req.A)
	if err != nil {
		return Response{Error: err.Error()}
	}

	var result *bitset.Bitmap
	switch req.Op {
	case "union", "intersect", "difference", "symdiff":
		b, err := s.Registry.Get(req.B)
		if err != nil {
			return Response{Error: err.Error()}
		}
		result, err = applyOp(req.Op, a, b)
		if err != nil {
			return Response{Error: err.Error()}
		}
	default:
		return Response{Error: errs.New(errs.TypeMismatch, "netservice: unknown op %q", req.Op).Error()}
	}

	return Response{Handle: s.Registry.Register(result)}
}

func applyOp(op string, a, b *bitset.Bitmap) (*bitset.Bitmap, error) {
	switch op {
	case "union":
		return a.Union(b)
	case "intersect":
		return a.Intersect(b)
	case "difference":
		return a.Difference(b)
	case "symdiff":
		return a.SymmetricDifference(b)
	default:
		return nil, errs.New(errs.TypeMismatch, "netservice: unknown op %q", op)
	}
}

// handleReduce fetches every named set from the Store concurrently via
// errgroup, then folds them sequentially with the core's pure algebra
// functions — no two goroutines ever touch the same *bitset.Bitmap.
func (s *Server) handleReduce(ctx context.Context, req Request) Response {
	if s.Store == nil {
		return Response{Error: errs.New(errs.TypeMismatch, "netservice: reduce requires a store").Error()}
	}
	if len(req.Names) == 0 {
		return Response{Error: errs.New(errs.DomainError, "netservice: reduce requires at least one name").Error()}
	}

	sets := make([]*bitset.Bitmap, len(req.Names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range req.Names {
		i, name := i, name
		g.Go(func() error {
			b, err := s.Store.Load(gctx, name)
			if err != nil {
				return err
			}
			sets[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Response{Error: err.Error()}
	}

	reducer := applyOp
	if req.Reducer == "" {
		req.Reducer = "union"
	}
	acc := sets[0]
	for _, next := range sets[1:] {
		combined, err := reducer(req.Reducer, acc, next)
		if err != nil {
			return Response{Error: err.Error()}
		}
		acc = combined
	}
	return Response{Handle: s.Registry.Register(acc)}
}

// Marshal encodes req as the JSON message body a client sends, so callers
// need not import encoding/json themselves.
func (req Request) Marshal() ([]byte, error) {
	return json.Marshal(req)
}
