// blank opens a window showing an empty canvas with the default black
// background. The smallest possible splat program.
package main

import (
	"log"

	"github.com/splatkit/splat"
)

func main() {
	display, err := splat.NewDisplay(800, 600, 1000/60)
	if err != nil {
		log.Fatalf("create display: %v", err)
	}
	if err := display.Run("splat: blank canvas"); err != nil {
		log.Fatalf("run: %v", err)
	}
}
