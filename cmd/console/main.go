package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/Pythra/qiimeet-admin/auth"
	"github.com/Pythra/qiimeet-admin/backend"
	"github.com/Pythra/qiimeet-admin/internal/config"
	"github.com/Pythra/qiimeet-admin/server"
	"github.com/Pythra/qiimeet-admin/session"
	"github.com/Pythra/qiimeet-admin/session/boltstore"
	"github.com/Pythra/qiimeet-admin/session/redisstore"
	"github.com/common-nighthawk/go-figure"
	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	sessions, closeStore, err := newSessionStore(c)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	defer closeStore()

	directory := backend.New(c.GetAPIBaseURL())
	authService, err := auth.NewService(auth.Repos{
		Directory: directory,
		Sessions:  sessions,
	})
	if err != nil {
		return fmt.Errorf("auth service: %w", err)
	}

	srv, err := server.New(c, authService, sessions)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{
		Addr:    c.GetPort(),
		Handler: handlers.LoggingHandler(os.Stdout, srv),
	}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func newSessionStore(c config.Config) (session.Store, func(), error) {
	switch c.GetSessionBackend() {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: c.GetRedisAddr()})
		return redisstore.New(client), func() { _ = client.Close() }, nil
	default:
		if err := os.MkdirAll(c.GetDataFolder(), 0755); err != nil {
			return nil, nil, err
		}
		store, err := boltstore.Open(filepath.Join(c.GetDataFolder(), "admin.db"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
