package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"rookery/internal/api"
	"rookery/internal/assets"
	"rookery/internal/config"
	"rookery/internal/prefs"
	"rookery/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	baseDir := flag.String("base-dir", ".", "application base directory")
	flag.Parse()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// User preferences live at <base>/Configuration/preferences.json;
	// the store creates the file with defaults on first load.
	prefStore := prefs.NewStore(prefs.DefaultPath(*baseDir))
	if _, err := prefStore.Load(); err != nil {
		slog.Error("failed to load preferences", "error", err)
		os.Exit(1)
	}

	// Open the game archive with WAL mode and run schema migrations.
	db, err := storage.OpenDatabase(filepath.Join(*baseDir, "Configuration", "archive.db"))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := storage.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	gameStore := storage.NewStore(db)

	scanner := assets.NewScanner(cfg.Assets.Dir)

	// Build router with all API routes and asset file serving.
	router := api.NewRouter(prefStore, gameStore, scanner, cfg.Assets.Dir)

	// Determine server address (localhost only for security).
	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)

	// Auto-open browser after a short delay to let the server start.
	if cfg.Server.AutoOpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			openBrowser("http://" + addr)
		}()
	}

	// Start HTTP server.
	slog.Info("starting server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// openBrowser opens the given URL in the user's default browser.
// It is a fire-and-forget operation; errors are silently ignored.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
