package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/oliveplate/oliveplate/api"
	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/cli"
	"github.com/oliveplate/oliveplate/config"
	"github.com/oliveplate/oliveplate/reconcile"
	"github.com/oliveplate/oliveplate/session"
	"github.com/oliveplate/oliveplate/utils"
)

func main() {
	// Optional; real configuration comes from the config file and environment.
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	sessions := session.NewStore(cfg.TokenPath)
	sessions.Init()

	client := api.New(cfg, sessions)
	store := cache.New(time.Duration(cfg.CacheTTLSec) * time.Second)
	mut := reconcile.New(client, store, sessions)

	err := cli.Execute(&cli.App{
		Cfg:      cfg,
		Sessions: sessions,
		Client:   client,
		Store:    store,
		Mut:      mut,
	})
	if err != nil {
		utils.Sugar.Errorf("command failed: %v", err)
		os.Exit(1)
	}
}
