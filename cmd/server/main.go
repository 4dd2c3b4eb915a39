package main

import (
	"log"

	httpapi "collapsi/internal/api/http"
	"collapsi/internal/api/ws"
	"collapsi/internal/config"
	"collapsi/internal/room"
	"collapsi/internal/store"
)

// @title Collapsi API
// @version 1.0
// @description REST API for the collapsi rule engine (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	r := httpapi.NewRouter(rm, hub)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
