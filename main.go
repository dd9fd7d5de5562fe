package main

import (
	"os"

	"github.com/WaverAndrew/marketing-quiz-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
