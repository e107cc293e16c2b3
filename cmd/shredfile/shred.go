package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shredfile/internal/config"
	"shredfile/internal/logging"
	"shredfile/internal/report"
	"shredfile/internal/security"
	"shredfile/internal/shred"
)

func runShred(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if profile != "" {
		if err := config.ApplyProfile(cfg, profile); err != nil {
			return err
		}
	}
	if flagPasses > 0 {
		cfg.Shred.Passes = flagPasses
	}
	if flagScheme != "" {
		cfg.Shred.Scheme = flagScheme
	}
	if keepName {
		cfg.Shred.ObfuscateName = false
	}

	scheme, err := shred.ValidateScheme(cfg.Shred.Scheme)
	if err != nil {
		return err
	}

	// Guard checks run for every target before anything is touched.
	for _, path := range args {
		if err := security.Checks(cfg, path); err != nil {
			return err
		}
	}

	if cfg.Security.RequireConfirmation && !force && !dryRun {
		if !confirm(args) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	logger := logging.New()
	if err := logger.Init(cfg, verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := shred.NewEngine(shred.EngineConfig{
		Scheme:        scheme,
		ChunkSize:     cfg.Shred.ChunkSize,
		MaxSpeedMBps:  cfg.Shred.MaxSpeedMBps,
		ObfuscateName: cfg.Shred.ObfuscateName,
		DryRun:        dryRun,
	}, logger)

	results := make([]*shred.Result, 0, len(args))
	exitCode := EXIT_SUCCESS

	for _, path := range args {
		fmt.Printf("Shredding %s (%d passes, %s scheme)\n", path, cfg.Shred.Passes, scheme.Name)

		res := engine.Shred(ctx, shred.Request{Path: path, Passes: cfg.Shred.Passes}, func(percent int) {
			fmt.Printf("\rProgress: %3d%%", percent)
		})
		fmt.Println()
		results = append(results, res)

		switch {
		case res.Status == shred.StatusCancelled:
			fmt.Printf("Cancelled: %s (%d of %d passes done, file left in place)\n", path, res.PassesCompleted, cfg.Shred.Passes)
			exitCode = EXIT_ERROR
		case !res.Success():
			fmt.Printf("FAILED: %s: %v\n", path, res.Err)
			exitCode = EXIT_ERROR
		case res.Warning != "":
			fmt.Printf("Done with warning: %s\n", res.Warning)
			if exitCode == EXIT_SUCCESS {
				exitCode = EXIT_WARNING
			}
		default:
			fmt.Printf("Done: %s (%s processed)\n", path, humanize.IBytes(res.BytesProcessed))
		}

		if ctx.Err() != nil {
			break
		}
	}

	endTime := time.Now()
	rep := report.Generate(results, Version, scheme.Name, cfg.Shred.Passes, dryRun, startTime, endTime, exitCode)
	rep.PrintSummary(os.Stdout)

	if cfg.Reporting.Enabled || reportDir != "" {
		dir := cfg.Reporting.LocalPath
		if reportDir != "" {
			dir = reportDir
		}
		if path, serr := rep.Save(dir); serr != nil {
			logger.Warn("failed to save report", zap.Error(serr))
			fmt.Fprintf(os.Stderr, "Failed to save report: %v\n", serr)
		} else {
			fmt.Printf("Report saved: %s\n", path)
		}
	}

	if exitCode != EXIT_SUCCESS {
		logger.Close()
		os.Exit(exitCode)
	}
	return nil
}

// confirm asks the operator to acknowledge the irreversible operation.
func confirm(paths []string) bool {
	fmt.Println("The following files will be destroyed irreversibly:")
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	fmt.Print("Type 'yes' to continue: ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "yes"
}
