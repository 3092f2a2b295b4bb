package main

import (
	"context"
	"os"
	"os/signal"

	"todo-text/internal/cli"
	"todo-text/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], cli.StandardStreams()))
}

// run executes one command and returns the process exit code
func run(args []string, streams cli.Streams) (code int) {
	boundary := newBoundary(streams, config.NewConfig())
	defer func() {
		if r := recover(); r != nil {
			code = boundary.recovered(r)
		}
	}()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		return boundary.report(err)
	}
	boundary.config = cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(cfg, cli.WithStreams(streams))
	root.Command().SetArgs(args)
	err = root.ExecuteContext(ctx)
	// flags may have moved the log file
	boundary.config = root.Config()
	if err != nil {
		return boundary.report(err)
	}
	return 0
}
