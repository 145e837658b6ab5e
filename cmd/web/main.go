// Web server for go-panlasa
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/panlasa/go-panlasa/internal/config"
	"github.com/panlasa/go-panlasa/internal/recipes"
	"github.com/panlasa/go-panlasa/internal/web"
)

var (
	// command-line flags
	webport    int
	webssl     bool
	webcert    string
	webkey     string
	appVersion = "-unset-"
)

func main() {
	config.AppVersion = appVersion

	flag.IntVar(&webport, "webport", 0, "Web server port (default: 8080 (no ssl) or 8443 (webssl))")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcert, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkey, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.Parse()

	webConfig := config.DefaultWebConfig()
	webConfig.SSL = webssl
	webConfig.CertFile = webcert
	webConfig.KeyFile = webkey
	switch {
	case webport > 0:
		webConfig.ListenPort = webport
	case webssl:
		webConfig.ListenPort = config.DefaultSSLPort
	}

	store := recipes.NewStore()
	log.Printf("[WEB]: Loaded %d recipes", store.Count())

	server := web.NewServer(store, webConfig)

	// Set up cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt) // Cross-platform (Ctrl+C on both Windows and Linux)

	log.Printf("[WEB]: Starting web server...")

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, shutting down...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	log.Printf("[WEB]: Graceful shutdown completed")
} // end main
