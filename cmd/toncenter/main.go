package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"toncenter-client/internal/conf"
	"toncenter-client/internal/log"
	"toncenter-client/internal/service"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "toncenter"
	// Version is the version of the compiled software.
	Version string
)

func main() {
	app := &cli.App{
		Name:    Name,
		Version: Version,
		Usage:   "Query the TON Center v2 HTTP API.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "conf",
				Aliases: []string{"c"},
				Usage:   "config path, eg: -conf config.yaml",
				Value:   "../../configs",
			},
		},
		Commands: commands(),
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commands() []*cli.Command {
	names := service.CommandNames()
	cmds := make([]*cli.Command, 0, len(names))
	for _, name := range names {
		name := name
		cmds = append(cmds, &cli.Command{
			Name:      name,
			ArgsUsage: service.CommandArgs(name),
			Action: func(c *cli.Context) error {
				return run(c.Context, c.String("conf"), name, c.Args().Slice())
			},
		})
	}
	return cmds
}

func run(ctx context.Context, confPath, name string, args []string) error {
	bc, err := conf.Load(confPath)
	if err != nil {
		return err
	}
	logger, err := log.BootstrapLogger(bc.Logger)
	if err != nil {
		return err
	}
	defer log.Sync()

	qs, err := wireQueryService(bc.Toncenter, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := qs.Run(ctx, name, args)
	if errors.Is(err, service.ErrUsage) {
		return cli.Exit(fmt.Sprintf("%s\ncommands:\n%s", err, service.Usage()), 2)
	}
	if err != nil {
		log.Error("query failed", zap.String("command", name), zap.Error(err))
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
