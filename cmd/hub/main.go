package main

import (
	"context"
	"log"
	"os"

	"github.com/MrSnakeDoc/hub/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("❌ hub failed: %v", err)
	}
}
