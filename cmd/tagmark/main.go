package main

import (
	"log"

	"github.com/tagmark/tagmark/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("tagmark failed to start: %v", err)
	}
}
