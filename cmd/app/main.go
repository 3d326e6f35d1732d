package main

import (
	"os"

	"github.com/ananyaa0518/resQAI/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
