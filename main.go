// ABOUTME: Entry point for the rawplay raw PCM player
// ABOUTME: Thin wrapper over the playback driver in internal/app
package main

import (
	"os"

	"github.com/rawaudio/rawplay-go/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
