package web

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/peterkuimelis/wixoss/internal/cache"
	"github.com/peterkuimelis/wixoss/internal/card"
	"github.com/peterkuimelis/wixoss/internal/feature"
	plog "github.com/peterkuimelis/wixoss/internal/log"
)

//go:embed static
var staticFiles embed.FS

// maxFragment caps the size of one posted or streamed fragment.
const maxFragment = 4 << 20

// Server is the wixoss HTTP API server.
type Server struct {
	dir    *cache.Dir
	events plog.EventLogger
	mux    *http.ServeMux
}

// NewServer creates a new web server reading cached cards from dir. The
// events logger may be nil.
func NewServer(dir *cache.Dir, events plog.EventLogger) *Server {
	if events == nil {
		events = plog.Discard{}
	}
	s := &Server{
		dir:    dir,
		events: events,
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	// API endpoints
	s.mux.HandleFunc("GET /api/features", s.handleFeatures)
	s.mux.HandleFunc("POST /api/parse", s.handleParse)
	s.mux.HandleFunc("GET /api/cards/{no}", s.handleCard)

	// WebSocket parse stream
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// ServeHTTP lets the server be mounted or tested directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, feature.Index())
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	kind := card.KindUnknown
	if slug := r.URL.Query().Get("kind"); slug != "" {
		k, ok := card.ParseKind(slug)
		if !ok {
			respondError(w, r, http.StatusBadRequest, "unknown kind "+slug)
			return
		}
		kind = k
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFragment))
	if err != nil {
		respondError(w, r, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	c, err := s.parse(kind, string(body), "POST /api/parse")
	if err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respond(w, r, http.StatusOK, c)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	no := r.PathValue("no")
	if s.dir == nil {
		respondError(w, r, http.StatusNotFound, "no cache directory configured")
		return
	}
	body, err := s.dir.Get(no)
	switch {
	case errors.Is(err, cache.ErrBadCardNo):
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, cache.ErrNotCached):
		respondError(w, r, http.StatusNotFound, err.Error())
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	c, err := s.parse(card.KindUnknown, body, no)
	if err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respond(w, r, http.StatusOK, c)
}

// handleWebSocket parses each text message as one fragment and answers
// with {"card": ...} or {"error": ...}. A bad card never closes the stream.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()
	wsConn.SetReadLimit(maxFragment)

	ctx := r.Context()
	for {
		typ, data, err := wsConn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				log.Printf("WebSocket read: %v", err)
			}
			return
		}
		if typ != websocket.MessageText {
			wsConn.Close(websocket.StatusUnsupportedData, "expected text messages")
			return
		}

		var reply streamReply
		if c, err := s.parse(card.KindUnknown, string(data), "ws"); err != nil {
			reply.Error = err.Error()
		} else {
			reply.Card = &c
		}
		if err := wsConn.Write(ctx, websocket.MessageText, []byte(encodeJSON(reply))); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}

type streamReply struct {
	Card  *card.Card `json:"card,omitempty"`
	Error string     `json:"error,omitempty"`
}

func (s *Server) parse(kind card.Kind, body, source string) (card.Card, error) {
	rec, err := card.ParseAs(kind, body)
	if err != nil {
		s.events.Log(plog.NewFailedEvent("", source, err))
		return card.Card{}, err
	}
	s.events.Log(plog.NewParsedEvent(rec.No, rec.Kind().Slug(), rec.Features.Len()))
	return card.Project(rec), nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
