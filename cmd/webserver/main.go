package main

import (
	_ "embed"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/ValonK1/Snake-game/pkg/config"
	"github.com/ValonK1/Snake-game/pkg/game"
)

// The browser client: renders state snapshots and sends action messages
// over the same websocket the server pushes on.
//
//go:embed static/index.html
var indexHTML []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// stateEvery throttles snapshot pushes to one per three ticks (~17 fps),
// plus an immediate push on every state-changing event.
const stateEvery = 3

// ServerMessage is the envelope for everything pushed to the client.
type ServerMessage struct {
	Type  string         `json:"type"`
	State *game.Snapshot `json:"state,omitempty"`
}

// ClientMessage carries one player action.
type ClientMessage struct {
	Action string `json:"action"`
}

// wsInput adapts client actions to the game's non-blocking input source.
type wsInput struct {
	keys chan game.Key
}

func newWSInput() *wsInput {
	return &wsInput{keys: make(chan game.Key, 32)}
}

func (w *wsInput) PollKey() (game.Key, bool) {
	select {
	case k := <-w.keys:
		return k, true
	default:
		return game.KeyNone, false
	}
}

func (w *wsInput) offer(k game.Key) {
	select {
	case w.keys <- k:
	default:
		// Flooded; the game keeps only the latest key anyway.
	}
}

// session runs one single-player game per websocket connection.
type session struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	in  *wsInput
	g   *game.Game
	pit game.Pit
	db  *game.ScoreDB

	start    time.Time
	recorded bool
}

func (s *session) sendState() error {
	snap := s.g.Snapshot()
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(ServerMessage{Type: "state", State: &snap})
}

func (s *session) record(res game.Result) {
	if s.db == nil || s.recorded {
		return
	}
	s.recorded = true
	if err := s.db.Record(res, s.g.Body().Len(), s.pit.WinLength(), time.Since(s.start)); err != nil {
		log.Println("record result:", err)
	}
}

func actionKey(action string) (game.Key, bool) {
	switch action {
	case "up":
		return game.KeyUp, true
	case "down":
		return game.KeyDown, true
	case "left":
		return game.KeyLeft, true
	case "right":
		return game.KeyRight, true
	case "cheat_win":
		return game.KeyCheatWin, true
	case "cheat_loss":
		return game.KeyCheatLoss, true
	}
	return game.KeyNone, false
}

func (s *session) run() {
	defer s.conn.Close()

	if err := s.sendState(); err != nil {
		return
	}

	done := make(chan struct{})
	restarts := make(chan struct{}, 1)

	go func() {
		defer close(done)
		for {
			var msg ClientMessage
			if err := s.conn.ReadJSON(&msg); err != nil {
				return
			}
			if key, ok := actionKey(msg.Action); ok {
				s.in.offer(key)
				continue
			}
			if msg.Action == "restart" {
				select {
				case restarts <- struct{}{}:
				default:
				}
			}
		}
	}()

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-done:
			return

		case <-restarts:
			if s.g.Result() != game.Playing {
				s.g.Reset(s.pit)
				s.start = time.Now()
				s.recorded = false
				if err := s.sendState(); err != nil {
					return
				}
			}

		case <-ticker.C:
			if s.g.Result() != game.Playing {
				continue
			}
			res := s.g.Tick()
			frame++
			if res != game.Playing {
				s.record(res)
				if err := s.sendState(); err != nil {
					return
				}
			} else if frame%stateEvery == 0 {
				if err := s.sendState(); err != nil {
					return
				}
			}
		}
	}
}

func envInt(key string, def, min int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= min {
			return n
		}
		log.Printf("ignoring bad %s=%q (minimum %d)", key, v, min)
	}
	return def
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("loading .env:", err)
	}

	addr := envStr("SNAKE_ADDR", config.DefaultListenAddr)
	pit := game.Pit{
		Rows: envInt("SNAKE_PIT_ROWS", config.DefaultPitRows, config.MinPitRows),
		Cols: envInt("SNAKE_PIT_COLS", config.DefaultPitCols, config.MinPitCols),
	}

	db, err := game.OpenScoreDB(envStr("SNAKE_SCORE_DB", config.DefaultScoreDB))
	if err != nil {
		log.Fatal("open score db:", err)
	}
	defer db.Close()

	log.Printf("snake webserver listening on %s (pit %dx%d)", addr, pit.Rows, pit.Cols)
	log.Fatal(http.ListenAndServe(addr, newMux(pit, db)))
}

// newMux wires the two routes: the browser client at the root and the
// websocket game endpoint it connects back to.
func newMux(pit game.Pit, db *game.ScoreDB) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}
		log.Println("new connection from", r.RemoteAddr)

		in := newWSInput()
		s := &session{
			conn:  conn,
			in:    in,
			g:     game.New(pit, in, game.NopRenderer{}, nil, nil),
			pit:   pit,
			db:    db,
			start: time.Now(),
		}
		s.run()
		log.Println("connection closed:", r.RemoteAddr)
	})

	return mux
}
