package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
)

type options struct {
	Iterations int      `help:"number of iterations per workload" default:"1000000"`
	Workloads  []string `help:"workloads to run (mul4, transpose4, toquat, compose)" default:"mul4,transpose4,toquat,compose"`
	Profile    string   `help:"record a profile while running the workloads" enum:"none,cpu,mem" default:"none"`
	Verbose    bool     `help:"enable debug logging" short:"v"`
}

func main() {
	var opts options

	kong.Parse(&opts,
		kong.Name("gmbench"),
		kong.Description("runs matrix workloads of the gm package"),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	}

	for _, name := range opts.Workloads {
		workload, ok := workloads[name]
		if !ok {
			slog.Warn("Unknown workload", slog.String("name", name))
			continue
		}

		slog.Debug("Start workload",
			slog.String("name", name),
			slog.Int("iterations", opts.Iterations))

		result := workload(opts.Iterations)

		perOp := result.Duration / time.Duration(max(1, opts.Iterations))
		slog.Info("Finish workload",
			slog.String("name", name),
			slog.String("iterations", humanize.Comma(int64(opts.Iterations))),
			slog.Duration("duration", result.Duration),
			slog.Duration("perOp", perOp),
			slog.String("checksum", humanize.FormatFloat("#,###.####", result.Checksum)))
	}
}
