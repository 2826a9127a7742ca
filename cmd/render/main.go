package main

import (
	"context"
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tgadump/internal/cli"
	"tgadump/pkg/bot"
	"tgadump/pkg/remote"
	"tgadump/pkg/source"
)

var listen = flag.String("listen", ":9123", "listen addr")
var tgToken = flag.String("tg-token", "", "telegram bot token")
var debug = flag.Bool("debug", false, "set debug")

func startBot(loader *source.Loader, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	if *tgToken == "" {
		return nil
	}

	b, err := bot.New(*tgToken, loader, logger)
	if err != nil {
		return err
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			b.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			b.Stop()
			return nil
		},
	})

	return nil
}

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, *http.Server) {
				return cli.NewLogger(*debug),
					&http.Server{Addr: *listen}
			},
			func(logger *zap.Logger) *source.Loader {
				return source.NewLoader(logger)
			},
			remote.NewService,
		),
		fx.Invoke(
			remote.Proxy,
			startBot,
		),
	).Run()
}
