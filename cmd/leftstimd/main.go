// SPDX-License-Identifier: MIT

// Command leftstimd serves embedded-figure stimuli as SVG over HTTP.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/leftstim/internal/config"
	"github.com/katalvlaran/leftstim/internal/server"
)

func main() {
	cfg := config.Load()
	app := server.New(cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting leftstim service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
