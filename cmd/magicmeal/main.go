// Magic Meal — three-ingredient dinners from a terminal.
//
// Usage:
//
//	magicmeal [command]
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/GitHubUser106/magic-meal/internal/catalog"
	"github.com/GitHubUser106/magic-meal/internal/config"
	"github.com/GitHubUser106/magic-meal/internal/logging"
	"github.com/GitHubUser106/magic-meal/internal/prefs"
	"github.com/GitHubUser106/magic-meal/internal/saved"
	"github.com/GitHubUser106/magic-meal/internal/shopping"
	"github.com/GitHubUser106/magic-meal/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "magicmeal:", err)
		os.Exit(1)
	}

	// Logs go to a file by default so command output stays clean.
	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "magicmeal:", err)
		os.Exit(1)
	}
	defer log.Sync()

	// A catalog that fails verification is an authoring defect; nothing
	// can run on inconsistent data.
	cat, err := catalog.New(log)
	if err != nil {
		log.Errorw("catalog verification failed", "error", err)
		fmt.Fprintln(os.Stderr, "magicmeal: broken recipe data:", err)
		os.Exit(1)
	}

	backend, err := storage.NewFileBackend(cfg.DataDir, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "magicmeal:", err)
		os.Exit(1)
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		catalog:  cat,
		prefs:    prefs.New(backend, log),
		saved:    saved.New(backend, log),
		shopping: shopping.New(backend, cat, log),
	}

	// Stores recover silently; the status only matters to the logs.
	_, st := a.prefs.Load()
	log.Debugw("preferences loaded", "status", st.String())
	_, st = a.saved.Load()
	log.Debugw("saved recipes loaded", "status", st.String())
	_, st = a.shopping.Load()
	log.Debugw("shopping list loaded", "status", st.String())

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
