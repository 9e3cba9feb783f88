package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/limbo/rexfit/internal/notify"
	"github.com/limbo/rexfit/internal/repository"
	"github.com/limbo/rexfit/internal/service"
	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/config"
	"github.com/spf13/cobra"
)

var (
	envFile    string
	exportPath string

	rootCmd = &cobra.Command{
		Use:   "rexctl",
		Short: "Inspect the local Rex workout tracker",
		Long: `rexctl reads the same snapshot as the API server and prints
progress, achievements, due reminders or the raw document. It never
writes the snapshot.`,
		SilenceUsage: true,
	}
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Prints today's progress, streak, level and body stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInspector(cmd, func(ctx context.Context, insp *service.Inspector) error {
				snap, err := insp.State(ctx)
				if err != nil {
					return err
				}
				return printStats(cmd.OutOrStdout(), snap)
			})
		},
	}
	achievementsCmd = &cobra.Command{
		Use:   "achievements",
		Short: "Lists every achievement and whether it is unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInspector(cmd, func(ctx context.Context, insp *service.Inspector) error {
				snap, err := insp.State(ctx)
				if err != nil {
					return err
				}
				return printAchievements(cmd.OutOrStdout(), snap)
			})
		},
	}
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Writes the stored document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInspector(cmd, func(ctx context.Context, insp *service.Inspector) error {
				out := cmd.OutOrStdout()
				if exportPath != "" {
					f, err := os.Create(exportPath)
					if err != nil {
						return err
					}
					defer f.Close()
					out = f
				}
				return export(ctx, out, insp)
			})
		},
	}
	remindCmd = &cobra.Command{
		Use:   "remind",
		Short: "Logs the reminders due right now without sending or stamping them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInspector(cmd, func(ctx context.Context, insp *service.Inspector) error {
				pending, err := insp.PendingNotifications(ctx)
				if err != nil {
					return err
				}
				return remind(ctx, cmd.OutOrStdout(), pending)
			})
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "optional .env file with storage settings")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(statsCmd, achievementsCmd, exportCmd, remindCmd)
}

// withInspector opens the store for reading only. The API server is the one
// writer; with the badger driver its directory lock keeps this from opening
// while the server runs.
func withInspector(cmd *cobra.Command, f func(ctx context.Context, insp *service.Inspector) error) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	repo, err := repository.Open(repository.Options{
		Driver:     cfg.StorageDriver,
		BadgerPath: cfg.BadgerPath,
		SQLitePath: cfg.SQLitePath,
		Postgres: &repository.PGCfg{
			Address:  cfg.Postgres.Address,
			Username: cfg.Postgres.Username,
			Password: cfg.Postgres.Password,
			DB:       cfg.Postgres.DB,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}
	insp := service.NewInspector(repo,
		service.WithLocation(loc),
		service.WithLogger(logger),
	)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return f(ctx, insp)
}

func printStats(w io.Writer, snap *service.Snapshot) error {
	doc, sum := snap.State, snap.Summary
	name := doc.UserName
	if name == "" {
		name = "Athlete"
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", name)
	fmt.Fprintf(tw, "Date\t%s\n", doc.Progress.Date)
	fmt.Fprintf(tw, "Routine\t%s\n", doc.Progress.RoutineID)
	fmt.Fprintf(tw, "Workout\t%d%%\n", sum.CompletionPercent)
	fmt.Fprintf(tw, "Water\t%d ml (%d%%)\n", doc.Progress.WaterIntakeMl, sum.HydrationPercent)
	fmt.Fprintf(tw, "Streak\t%d weeks\n", sum.Streak)
	fmt.Fprintf(tw, "Level\t%d (%.0f%%)\n", sum.Level, sum.LevelProgress)
	fmt.Fprintf(tw, "Weight\t%.1f kg, lost %.1f kg\n", sum.Body.CurrentWeight, sum.Body.TotalLoss)
	fmt.Fprintf(tw, "BMI\t%.1f %s\n", sum.Body.BMI, sum.Body.BMILabel)
	if sum.NeedsWeighIn {
		fmt.Fprintf(tw, "Weigh-in\tdue, last one %d days ago\n", sum.DaysSinceLastWeighIn)
	}
	fmt.Fprintf(tw, "Bones\t%d\n", doc.Wallet)
	fmt.Fprintf(tw, "Achievements\t%d/%d\n", sum.UnlockedAchievements, len(sum.Achievements))
	return tw.Flush()
}

func printAchievements(w io.Writer, snap *service.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, a := range snap.Summary.Achievements {
		mark := "·"
		if a.Unlocked {
			mark = "✓"
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\n", mark, a.Icon, a.Title, strings.TrimSpace(a.Description))
	}
	return tw.Flush()
}

type exporter interface {
	Export(ctx context.Context) ([]byte, error)
}

func export(ctx context.Context, w io.Writer, src exporter) error {
	data, err := src.Export(ctx)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func remind(ctx context.Context, w io.Writer, pending []tracker.Decision) error {
	if len(pending) == 0 {
		_, err := fmt.Fprintln(w, "No reminders due")
		return err
	}
	n := notify.NewLogNotifier(slog.New(slog.NewTextHandler(w, nil)))
	for _, d := range pending {
		if err := n.Notify(ctx, d.Title, d.Body); err != nil {
			return err
		}
	}
	return nil
}
