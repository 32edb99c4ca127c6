package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/velovault/velo/cmd"
)

func main() {
	// Optional .env next to the working directory may set VELO_DB.
	_ = godotenv.Load()

	// Shell completion: when invoked by the completion engine this prints
	// candidates and exits.
	cmd.Completion().Complete("velo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
