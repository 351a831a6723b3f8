package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type config struct {
	LogLevel string
	Script   string
	Metrics  bool
}

func main() {
	var cfg config

	app := kingpin.New("dynarray-trace", "Replay an operation script against a dynamic array and log how its capacity evolves.")
	app.HelpFlag.Short('h')
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&cfg.LogLevel, "debug", "info", "warn", "error")

	run := app.Command("run", "Run a YAML operation script.")
	run.Arg("script", "Path to the script.").Required().StringVar(&cfg.Script)
	run.Flag("metrics", "Log the Prometheus series of the final array.").BoolVar(&cfg.Metrics)

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	logger := newLogger(cfg.LogLevel)

	switch cmd {
	case run.FullCommand():
		if err := runScript(cfg, logger); err != nil {
			level.Error(logger).Log("msg", "run failed", "err", err)
			os.Exit(1)
		}
	}
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, allow(lvl))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func allow(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
