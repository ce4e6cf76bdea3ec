// Package stream broadcasts rendered draw lists to WebSocket clients, so a
// browser (or anything else) can display the surface remotely.
package stream

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/taigrr/swell/internal/logger"
	"github.com/taigrr/swell/pkg/render"
	"github.com/taigrr/swell/pkg/scene"
)

// CoordScale is the fixed-point factor for packed frame coordinates: logical
// units are multiplied by it and rounded to int16.
const CoordScale = 16

const writeTimeout = 200 * time.Millisecond

// Frame is one broadcast message. Points packs the four corners of every
// polygon as little-endian int16 x,y pairs in 1/CoordScale logical units;
// Colors carries 3 bytes (r, g, b) per polygon. Both fields ride through
// JSON as base64.
type Frame struct {
	T       int64  `json:"t"`
	FrameID uint64 `json:"frame_id"`
	Variant string `json:"variant"`
	Faces   int    `json:"faces"`
	Points  []byte `json:"points"`
	Colors  []byte `json:"colors"`
}

// hello is sent once to every new client before any frames.
type hello struct {
	Type       string  `json:"type"`
	Variant    string  `json:"variant"`
	Faces      int     `json:"faces"`
	FPS        int     `json:"fps"`
	Extent     float64 `json:"extent"`
	CoordScale int     `json:"coord_scale"`
}

// Broadcaster owns the client set and the HTTP server. Publish may be called
// from the frame loop whether or not anyone is connected.
type Broadcaster struct {
	mu        sync.RWMutex
	clients   map[*websocket.Conn]bool
	frameID   uint64
	startTime time.Time
	fps       int
	variant   string
	faces     int
	srv       *http.Server
}

// New creates a broadcaster. fps is advertised to clients, not enforced; the
// frame loop paces itself.
func New(fps int) *Broadcaster {
	return &Broadcaster{
		clients:   map[*websocket.Conn]bool{},
		startTime: time.Now(),
		fps:       fps,
	}
}

// Serve registers /ws and /health and blocks on the HTTP server. It returns
// nil after a clean Shutdown.
func (b *Broadcaster) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", b.HandleWS)
	mux.HandleFunc("/health", b.HandleHealth)

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	b.mu.Lock()
	b.srv = srv
	b.mu.Unlock()

	logger.Info("stream listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown closes every client connection and stops the HTTP server.
func (b *Broadcaster) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	for c := range b.clients {
		c.Close()
	}
	b.clients = map[*websocket.Conn]bool{}
	srv := b.srv
	b.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// HandleWS upgrades the connection, sends the hello message and keeps a read
// pump running so client closes are noticed.
func (b *Broadcaster) HandleWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	b.mu.Lock()
	b.clients[conn] = true
	n := len(b.clients)
	b.mu.Unlock()
	logger.Debug("stream client connected", zap.Int("clients", n))

	b.sendHello(conn)

	go func() {
		defer func() {
			b.mu.Lock()
			delete(b.clients, conn)
			b.mu.Unlock()
			conn.Close()
			logger.Debug("stream client gone")
		}()
		for {
			// Inbound messages are ignored; errors mean the client left
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// HandleHealth reports liveness counters as JSON.
func (b *Broadcaster) HandleHealth(w http.ResponseWriter, r *http.Request) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	resp := map[string]any{
		"frame_id": b.frameID,
		"uptime_s": time.Since(b.startTime).Seconds(),
		"variant":  b.variant,
		"faces":    b.faces,
		"fps":      b.fps,
		"clients":  len(b.clients),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Publish encodes the draw list and fans it out to every client. Encoding is
// skipped entirely while nobody is connected.
func (b *Broadcaster) Publish(variant string, polys []scene.Polygon) {
	b.mu.Lock()
	b.frameID++
	id := b.frameID
	b.variant = variant
	b.faces = len(polys)
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for c := range b.clients {
		conns = append(conns, c)
	}
	b.mu.Unlock()

	if len(conns) == 0 {
		return
	}

	data, err := json.Marshal(EncodeFrame(variant, id, polys))
	if err != nil {
		return
	}
	for _, c := range conns {
		c.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Debug("write frame", zap.Error(err))
		}
	}
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *Broadcaster) sendHello(conn *websocket.Conn) {
	b.mu.RLock()
	msg := hello{
		Type:       "hello",
		Variant:    b.variant,
		Faces:      b.faces,
		FPS:        b.fps,
		Extent:     render.ViewExtent,
		CoordScale: CoordScale,
	}
	b.mu.RUnlock()

	data, _ := json.Marshal(msg)
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = conn.WriteMessage(websocket.TextMessage, data)
}

// EncodeFrame packs a draw list into the wire frame format.
func EncodeFrame(variant string, id uint64, polys []scene.Polygon) Frame {
	points := make([]byte, 0, len(polys)*16)
	colors := make([]byte, 0, len(polys)*3)

	var pair [4]byte
	for _, poly := range polys {
		for _, p := range poly.Points {
			binary.LittleEndian.PutUint16(pair[0:2], uint16(quantize(p.X)))
			binary.LittleEndian.PutUint16(pair[2:4], uint16(quantize(p.Y)))
			points = append(points, pair[:]...)
		}
		colors = append(colors, poly.Color.R, poly.Color.G, poly.Color.B)
	}

	return Frame{
		T:       time.Now().UnixNano(),
		FrameID: id,
		Variant: variant,
		Faces:   len(polys),
		Points:  points,
		Colors:  colors,
	}
}

// quantize converts a logical coordinate to fixed point, saturating at the
// int16 range.
func quantize(v float64) int16 {
	q := math.Round(v * CoordScale)
	if q > math.MaxInt16 {
		return math.MaxInt16
	}
	if q < math.MinInt16 {
		return math.MinInt16
	}
	return int16(q)
}
