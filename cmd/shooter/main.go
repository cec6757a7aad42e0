package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mrDIMAS/rusty-shooter/internal/api"
	"github.com/mrDIMAS/rusty-shooter/internal/config"
	"github.com/mrDIMAS/rusty-shooter/internal/game"
	"github.com/mrDIMAS/rusty-shooter/internal/level"
	"github.com/mrDIMAS/rusty-shooter/internal/persist"
	"github.com/mrDIMAS/rusty-shooter/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("💡 No .env file found, using environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	log.Println("🎮 ================================")
	log.Println("🎮  RUSTY SHOOTER - MATCH SERVER")
	log.Println("🎮 ================================")

	gameCfg := game.DefaultConfig()
	if cfg.Seed != 0 {
		gameCfg.Seed = cfg.Seed
	} else {
		gameCfg.Seed = time.Now().UnixNano()
	}
	matchCfg := game.MatchConfig{
		Mode:       game.ModeDeathmatch,
		FragLimit:  cfg.FragLimit,
		TimeLimit:  cfg.TimeLimitMin * 60,
		EndingHold: 10,
	}

	doc := level.Default()
	if cfg.LevelPath != "" {
		doc, err = level.ReadFile(cfg.LevelPath)
		if err != nil {
			log.Fatalf("❌ level: %v", err)
		}
	}
	if cfg.Bots >= 0 {
		doc.Bots = doc.Bots[:0]
		for i := 0; i < cfg.Bots; i++ {
			doc.Bots = append(doc.Bots, level.BotDecl{})
		}
	}

	world, err := doc.Build(gameCfg, matchCfg)
	if err != nil {
		log.Fatalf("❌ level build: %v", err)
	}
	log.Printf("🗺️  level %q loaded: %d spawn points, %d bots", doc.Name, len(doc.SpawnPoints), len(doc.Bots))

	runner := game.NewRunner(world, cfg.TickRate)

	eventLog := game.NewEventLog()
	if err := eventLog.Start(cfg.EventLogPath); err != nil {
		log.Fatalf("❌ event log: %v", err)
	}
	defer eventLog.Stop()
	runner.AddSink(eventLogSink{eventLog})

	matchID := uuid.NewString()
	var archive *store.Store
	if cfg.DBPath != "" {
		archive, err = store.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("❌ store: %v", err)
		}
		defer archive.Close()
		runner.AddSink(store.NewEventSink(archive, matchID))
	}

	hub := api.NewHub()
	defer hub.Close()
	runner.AddSink(hub)
	runner.SetMetrics(api.NewMetrics())

	runner.Start()
	defer runner.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.NewServer(runner, hub).Router(),
	}
	go func() {
		log.Printf("🌐 listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ http: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("👋 shutting down")
	case <-runner.Done():
		log.Println("🏁 match finished")
		if archive != nil {
			snap := runner.Snapshot()
			rows := finalScoreboard(snap)
			if err := archive.RecordMatch(matchID, snap, rows); err != nil {
				log.Printf("⚠️ archive match: %v", err)
			}
		}
	}

	if cfg.SnapshotPath != "" {
		if err := persist.Save(cfg.SnapshotPath, *runner.Snapshot()); err != nil {
			log.Printf("⚠️ snapshot save: %v", err)
		} else {
			log.Printf("💾 snapshot saved to %s", cfg.SnapshotPath)
		}
	}
	server.Close()
}

type eventLogSink struct {
	log *game.EventLog
}

func (s eventLogSink) HandleEvents(events []game.Event) { s.log.AppendAll(events) }

func finalScoreboard(snap *game.Snapshot) []store.ScoreboardRow {
	rows := make([]store.ScoreboardRow, 0, len(snap.Actors))
	for i := range snap.Actors {
		a := &snap.Actors[i]
		rows = append(rows, store.ScoreboardRow{
			ActorID: a.ID,
			Name:    a.Name,
			Frags:   a.Frags,
			Deaths:  a.Deaths,
		})
	}
	return rows
}
