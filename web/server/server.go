package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
	"github.com/rmoran/go-phong-raytracer/pkg/renderer"
	"github.com/rmoran/go-phong-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server on the given port
func NewServer(port int) *Server {
	return &Server{port: port, logger: renderer.NewDefaultLogger()}
}

// Start registers the handlers and blocks serving HTTP
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Listening on %s\n", addr)
	return http.ListenAndServe(addr, mux)
}

// handleScenes lists the registered scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.Names()}); err != nil {
		s.logger.Printf("Error encoding scene list: %v\n", err)
	}
}

// ProgressUpdate is a single progressive update sent via SSE after each
// scanline batch
type ProgressUpdate struct {
	RowsCompleted int    `json:"rowsCompleted"`
	TotalRows     int    `json:"totalRows"`
	ImageData     string `json:"imageData"` // Base64 encoded PNG
	IsComplete    bool   `json:"isComplete"`
	ElapsedMs     int64  `json:"elapsedMs"`
}

// handleRender renders a scene progressively, streaming a snapshot of
// the canvas after every scanline batch via Server-Sent Events
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	query := r.URL.Query()
	name := query.Get("scene")
	if name == "" {
		name = "default"
	}
	width := parseIntParam(query.Get("width"), 800)
	height := parseIntParam(query.Get("height"), 450)

	builder, ok := scene.Get(name)
	if !ok {
		s.writeSSEEvent(w, "error", fmt.Sprintf(`{"message":"unknown scene %q"}`, name))
		return
	}

	world, camera := builder(width, height)
	stream := renderer.NewStream(world, camera, renderer.DefaultStreamConfig(), s.logger)

	ctx := r.Context()
	startTime := time.Now()

	for {
		// Stop rendering when the client goes away; the current batch
		// still runs to completion.
		select {
		case <-ctx.Done():
			return
		default:
		}

		more := stream.Advance()

		update := ProgressUpdate{
			RowsCompleted: stream.CompletedRows(),
			TotalRows:     camera.VSize,
			IsComplete:    !more,
			ElapsedMs:     time.Since(startTime).Milliseconds(),
		}

		imageData, err := encodeCanvasPNG(stream.Canvas())
		if err != nil {
			s.writeSSEEvent(w, "error", fmt.Sprintf(`{"message":"encoding image: %v"}`, err))
			return
		}
		update.ImageData = imageData

		data, err := json.Marshal(update)
		if err != nil {
			s.logger.Printf("Error marshaling update: %v\n", err)
			return
		}
		if !s.writeSSEEvent(w, "progress", string(data)) {
			return
		}

		if !more {
			return
		}
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvent writes one SSE event and flushes it to the client. It
// reports false when the client has disconnected.
func (s *Server) writeSSEEvent(w http.ResponseWriter, event, data string) bool {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return false
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return true
}

// encodeCanvasPNG encodes the canvas as a base64 PNG for embedding in a
// JSON event
func encodeCanvasPNG(canvas *renderer.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.ToRGBA()); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// parseIntParam parses a positive integer query parameter with a default
func parseIntParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
