// FilePath: server/readings/cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/itsatony/w4b_v3/server/readings/internal/config"
	"github.com/itsatony/w4b_v3/server/readings/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting W4B Readings Server v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	nuts.L.Infof("[Main] Using %s storage", cfg.Database.Driver)

	srv, err := server.New(cfg)
	if err != nil {
		nuts.L.Errorf("[Main] Failed to initialize server: %v", err)
		os.Exit(1)
	}
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ____                  ___                 ",
		"   / __ \\___  ____ _____/ (_)___  ____ ______",
		"  / /_/ / _ \\/ __ `/ __  / / __ \\/ __ `/ ___/",
		" / _, _/  __/ /_/ / /_/ / / / / / /_/ (__  ) ",
		"/_/ |_|\\___/\\__,_/\\__,_/_/_/ /_/\\__, /____/  ",
		"                               /____/        ",
		"..............................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
