// Command adsbench runs configurable workloads against the library's
// collection types and reports throughput.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/FilaCo/ads"
	"github.com/FilaCo/ads/bench"
	"github.com/FilaCo/ads/pkg/logging"
)

func main() {
	// Manually parse global flags for logging, as they are needed before
	// subcommands.
	var logLevel, logFormat string
	fs := flag.NewFlagSet("global", flag.ContinueOnError)
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
	// Ignore errors, we'll just use defaults if flags are not there.
	_ = fs.Parse(os.Args)

	logging.InitLogger(logLevel, logFormat, nil)

	if len(os.Args) < 2 {
		logging.GetLogger().Error("expected 'run', 'list' or 'version' subcommands")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCmd := flag.NewFlagSet("run", flag.ExitOnError)
		configFile := runCmd.String("config", "", "Path to the workload YAML file. Empty runs the built-in default workload.")
		timeout := runCmd.Duration("timeout", 0, "Abort the run after this duration. Zero means no limit.")
		// Add logging flags to help text, but they are handled globally.
		runCmd.String("log-level", "info", "Log level (debug, info, warn, error)")
		runCmd.String("log-format", "console", "Log format (console, json)")
		if err := runCmd.Parse(os.Args[2:]); err != nil {
			logging.GetLogger().Error("Failed to parse run flags", "error", err)
			os.Exit(1)
		}
		runWorkload(*configFile, *timeout)

	case "list":
		for _, s := range bench.Structures() {
			fmt.Println(s)
		}

	case "version":
		fmt.Println(ads.Version)

	default:
		logging.GetLogger().Error("expected 'run', 'list' or 'version' subcommands", "command", os.Args[1])
		os.Exit(1)
	}
}

func runWorkload(configFile string, timeout time.Duration) {
	logger := logging.GetLogger()

	workload := bench.DefaultWorkload()
	if configFile != "" {
		cfg, err := bench.LoadFileConfig(configFile)
		if err != nil {
			logger.Error("Failed to load workload config", "error", err)
			os.Exit(1)
		}
		workload = cfg.Workload
	}

	runner, err := bench.NewRunner(workload, nil, logger)
	if err != nil {
		logger.Error("Failed to create runner", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := runner.Run(ctx)
	if err != nil {
		logger.Error("Workload failed", "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "structure\tops\treads\thits\tinserts\terases\telapsed\tops/s\n")
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%s\t%.0f\n",
		workload.Structure, result.Ops, result.Reads, result.Hits,
		result.Inserts, result.Erases, result.Elapsed.Round(time.Millisecond), result.Throughput())
	_ = w.Flush()
}
