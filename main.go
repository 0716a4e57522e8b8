package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fightrl/comboinject/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.RootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
