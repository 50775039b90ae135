package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/decktrans/internal/archive"
	"codeberg.org/snonux/decktrans/internal/batch"
	"codeberg.org/snonux/decktrans/internal/cli"
	"codeberg.org/snonux/decktrans/internal/deck"
	"codeberg.org/snonux/decktrans/internal/models"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	flags.ApplyConfig()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	sources := append([]string(nil), args...)
	if flags.Source != "" {
		sources = append(sources, flags.Source)
	}
	if len(sources) == 0 {
		return cmd.Help()
	}

	files, err := batch.CollectFiles(strings.Join(sources, ";"), ".yaml", ";")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .yaml decks found in %s", strings.Join(sources, ", "))
	}

	service, err := cli.NewService(flags)
	if err != nil {
		return err
	}

	job := &batch.Job{
		TargetDir:              flags.OutputDir,
		Language:               flags.To,
		GlobalDictionary:       flags.GlobalDictionary,
		Dictionary:             flags.Dictionary,
		RemoveUnusedFromGlobal: flags.RemoveUnused,
		Backend:                service,
		Remove:                 deck.ColorPredicate(flags.RemoveColor),
	}

	// Handle --archive flag
	if flags.Archive {
		for _, name := range []string{flags.GlobalDictionary, flags.Dictionary} {
			if err := archiveDictionary(flags.OutputDir, name); err != nil {
				return err
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	status := cli.NewStatus(os.Stdout)
	job.Status = status.Update

	fmt.Printf("Translating %d deck(s) from %s to %s\n", len(files), flags.From, flags.To)
	result, err := job.Run(ctx, files)
	status.Done()
	if result != nil {
		batch.PrintSummary(os.Stdout, result)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nDone! Decks saved to: %s\n", flags.OutputDir)
	return nil
}

// archiveDictionary archives an existing dictionary; missing ones are skipped
func archiveDictionary(dir, name string) error {
	if name == "" {
		return nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if _, err := archive.ArchiveDictionary(path); err != nil {
		return fmt.Errorf("failed to archive dictionary: %w", err)
	}
	return nil
}
