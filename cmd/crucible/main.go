// Command crucible finds minimum-cost routes across digit grids.
//
// It supports three commands:
//  1. "solve" – print the minimum total cost (optionally the route) for one or more goals
//  2. "render" – validate a grid and print it back
//  3. "serve-mcp" – expose the search as MCP tools over stdio
//
// Flags can also be set through CRUCIBLE_* environment variables, which are
// read from a .env file in the working directory when one exists.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "crucible"
)

func main() {
	loadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}

// loadEnv loads .env files if they exist. A missing file is not an error.
func loadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
		return
	}
	log.Println("Loaded environment variables from .env file")
}

// newApp builds the command tree reading from in and writing to out and errOut.
func newApp(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "minimum-cost routes across digit grids with run-length limits",
		Version:   Version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log search progress to stderr",
				Sources: cli.EnvVars("CRUCIBLE_DEBUG"),
			},
		},
		Commands: []*cli.Command{
			solveCommand(),
			renderCommand(),
			serveMCPCommand(),
		},
	}
}

// newLogger returns a logger on the root command's error writer. With
// --debug it adds file:line prefixes; without it, it discards everything.
func newLogger(cmd *cli.Command) *log.Logger {
	if !cmd.Bool("debug") {
		return log.New(io.Discard, "", 0)
	}

	return log.New(cmd.Root().ErrWriter, AppName+": ", log.LstdFlags|log.Lshortfile)
}
