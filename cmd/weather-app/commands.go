package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"weather-app/config"
	"weather-app/internal/app"
	"weather-app/internal/controllers/cli"
	v1 "weather-app/internal/controllers/http/v1"
	"weather-app/internal/repositories"
	"weather-app/internal/services/favorites"
	"weather-app/internal/services/weather"
	"weather-app/internal/storage"
	"weather-app/pkg/httpserver"
	"weather-app/pkg/logger"
	"weather-app/pkg/observe"
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "weather-app",
		Short:         "Current weather for any city, with favorites",
		Long:          "Search the current weather by city name and keep a list of favorite cities.\nWithout a subcommand an interactive prompt is started.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, flags)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log at the configured level in interactive commands")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newServeCmd(flags), newGetCmd(flags))

	return root
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(flags)
		},
	}
}

func newGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <city>",
		Short: "Print the current weather for a city and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, flags, args)
		},
	}
}

// runtime holds everything a command needs, built from the config.
type runtime struct {
	cnf  *config.Config
	l    *logger.Logger
	hook *observe.SentryHook
	kv   storage.KV
	app  *app.App
}

// bootstrap loads the config and wires logging, storage, the provider client
// and the app. Interactive commands pass quiet so that only errors reach the
// log unless --verbose is set.
func bootstrap(flags *rootFlags, logOut io.Writer, quiet bool) (*runtime, error) {
	cnf, err := config.NewConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := cnf.Log.Level
	if quiet && !flags.verbose {
		level = "error"
	}

	writers := []io.Writer{logOut}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.Sentry.Debug)
		writers = append(writers, hook)
	}

	l := logger.NewZapLoggerWithOptions(cnf.App.Name, logger.Options{
		AppEnv: cnf.App.Env,
		Level:  level,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	kv, err := storage.New(cnf.Favorites)
	if err != nil {
		return nil, err
	}

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		kv.Close()
		return nil, err
	}

	service := weather.NewWeatherService(repo, l)
	store := favorites.NewStore(kv, cnf.Favorites.Key, l)

	l.Info("application configured", map[string]any{
		"env":              cnf.App.Env,
		"provider":         repo.Name(),
		"favorites_driver": cnf.Favorites.Driver,
	})

	return &runtime{
		cnf:  cnf,
		l:    l,
		hook: hook,
		kv:   kv,
		app:  app.New(service, store, l),
	}, nil
}

func (r *runtime) close() {
	if err := r.kv.Close(); err != nil {
		r.l.Error(err, map[string]any{"stage": "shutdown"})
	}
	if r.hook != nil {
		r.hook.Flush()
	}
	_ = r.l.Stop()
}

func (r *runtime) renderer(out io.Writer, noColor bool) *cli.Renderer {
	return cli.NewRenderer(out, cli.RendererOptions{NoColor: noColor})
}

func runREPL(cmd *cobra.Command, flags *rootFlags) error {
	rt, err := bootstrap(flags, os.Stderr, true)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	repl := cli.NewREPL(rt.app, rt.renderer(out, flags.noColor), cmd.InOrStdin(), out, rt.l)

	rt.app.Init(ctx, rt.cnf.App.DefaultCity)

	return repl.Run(ctx)
}

func runGet(cmd *cobra.Command, flags *rootFlags, args []string) error {
	rt, err := bootstrap(flags, os.Stderr, true)
	if err != nil {
		return err
	}
	defer rt.close()

	rt.app.Init(cmd.Context(), "")

	city := strings.Join(args, " ")

	return cli.Lookup(cmd.Context(), rt.app, rt.renderer(cmd.OutOrStdout(), flags.noColor), city)
}

func runServe(flags *rootFlags) error {
	ctx, cancel := context.WithCancel(context.Background())

	rt, err := bootstrap(flags, os.Stdout, false)
	if err != nil {
		cancel()
		return err
	}
	l := rt.l

	rt.app.Subscribe(func(s app.State) {
		l.Debug("state changed", map[string]any{
			"city":      s.City,
			"status":    string(s.Request.Status),
			"favorites": len(s.Favorites),
		})
	})

	server := httpserver.InitFiberServer(rt.cnf.App.Name, rt.cnf.Server, l)

	v1.NewRouter(
		server,
		rt.app,
		l,
	)

	rt.app.Init(ctx, rt.cnf.App.DefaultCity)

	go func() {
		if err := server.Listen(":" + rt.cnf.Server.Port); err != nil {
			l.Error(err, map[string]any{"port": rt.cnf.Server.Port})
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{"port": rt.cnf.Server.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = server.ShutdownWithContext(shutdownCtx)
		rt.close()
		cancel()
	}()

	select {
	case <-sigCh:
		l.Info("received shutdown signal")
	case <-ctx.Done():
		l.Info("context cancelled")
	}

	return nil
}
