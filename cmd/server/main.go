package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "kaijuverse/internal/adapter/http"
	metricsinmem "kaijuverse/internal/adapter/metrics/inmemory"
	gormrepo "kaijuverse/internal/adapter/repo/gorm"
	"kaijuverse/internal/adapter/repo/memory"
	staticvisualizer "kaijuverse/internal/adapter/visualizer/static"
	"kaijuverse/internal/adapter/ws"
	"kaijuverse/internal/app/match"
	"kaijuverse/internal/app/ports"
	"kaijuverse/internal/app/preview"
	"kaijuverse/internal/app/replay"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	matchRepo, eventRepo, txManager := mustBuildRepos()
	kpiRecorder := metricsinmem.NewRecorder()
	hub := ws.NewHub()

	h := httpadapter.Handler{
		MatchUC: match.UseCase{
			Matches:          matchRepo,
			Events:           eventRepo,
			TxManager:        txManager,
			Metrics:          kpiRecorder,
			Feed:             hub,
			Now:              time.Now,
			DefaultTurnLimit: intEnv("KAIJU_TURN_LIMIT", 0),
			DefaultBudget:    intEnv("KAIJU_STARTING_BUDGET", 0),
		},
		PreviewUC: preview.UseCase{},
		ReplayUC: replay.UseCase{
			Matches: matchRepo,
			Events:  eventRepo,
		},
		Visualizer: staticvisualizer.Provider{Root: resolveVisualizerRoot()},
		KPI:        kpiRecorder,
	}

	wsAddr := strEnv("KAIJU_WS_ADDR", ":8081")
	go func() {
		log.Printf("kaijuverse live feed listening on %s", wsAddr)
		if err := ws.ListenAndServe(wsAddr, hub); err != nil {
			log.Fatalf("ws listener: %v", err)
		}
	}()

	httpAddr := strEnv("KAIJU_HTTP_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(httpAddr))
	s.Use(httpadapter.CORSMiddleware())
	h.RegisterRoutes(s)

	log.Printf("kaijuverse server listening on %s", httpAddr)
	s.Spin()
}

func mustBuildRepos() (ports.MatchRepository, ports.EventRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("KAIJU_DB_DSN"))
	if dsn == "" {
		log.Println("KAIJU_DB_DSN not set, using in-memory persistence")
		store := memory.NewStore()
		return memory.NewMatchRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	if dir := strings.TrimSpace(os.Getenv("KAIJU_MIGRATIONS_DIR")); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}

	return gormrepo.NewMatchRepository(db), gormrepo.NewEventRepository(db), gormrepo.NewTxManager(db)
}

func resolveVisualizerRoot() string {
	if root := strings.TrimSpace(os.Getenv("KAIJU_VISUALIZER_DIR")); root != "" {
		return root
	}
	return "./visualizer"
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
