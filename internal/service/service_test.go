package service

import (
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/ws"
)

// newTestHub returns a running hub so broadcasts are drained even with no
// clients connected.
func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func newTestRepos() *repository.Repositories {
	return repository.NewMemoryRepositories()
}
