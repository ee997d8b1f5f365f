package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ugaemi/frogger-server/internal/config"
	"github.com/ugaemi/frogger-server/internal/handler"
	"github.com/ugaemi/frogger-server/internal/session"
	"github.com/ugaemi/frogger-server/internal/store"
	"github.com/ugaemi/frogger-server/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg, os.Stdout)

	g, err := config.LoadGame(cfg.LevelsFile)
	if err != nil {
		slog.Error("failed to load game definition", "file", cfg.LevelsFile, "error", err)
		os.Exit(1)
	}
	slog.Info("game loaded", "levels", len(g.Levels), "tick", g.Settings.TickInterval)

	scores, err := openScoreStore(cfg)
	if err != nil {
		slog.Error("failed to open score store", "error", err)
		os.Exit(1)
	}
	defer scores.Close()

	hub := ws.NewHub()
	sm := session.NewManager(g.Settings, g.Levels)
	router := handler.NewRouter(sm, scores)

	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	go hub.Run()

	http.HandleFunc("/health", handleHealth)
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(hub, w, r)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openScoreStore(cfg *config.Config) (store.HighScoreStore, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("using local score store", "app", cfg.DataAppName)
		return store.OpenLocal(cfg.DataAppName), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	slog.Info("connected to database")
	return s, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func handleWebSocket(hub *ws.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(hub, conn)
	hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
