package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/task-saga-service/internal/app/saga"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
)

// Exit codes.
const (
	exitReplayIncomplete = 1
	exitCommandError     = 2
)

// errReplayIncomplete is returned by replay when at least one entry failed
// again.
var errReplayIncomplete = errors.New("some compensations could not be replayed")

// validFormats are the accepted values of --format.
var validFormats = []string{"text", "json"}

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Profile     string
	Format      string
	JournalPath string
}

func newRootCommand(open openFunc) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "compensator",
		Short: "Inspect and replay failed compensations",
		Long: `Inspect and replay undo operations that failed while a unit of work was
compensating. Entries are read from the compensation journal configured for
the profile (saga.journal.path) and replayed against its item store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			if opts.Profile == "" {
				return errors.New("--profile or APP_PROFILE is required (e.g. local, dev, qa, prod)")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", os.Getenv("APP_PROFILE"), "config profile (defaults to $APP_PROFILE)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.JournalPath, "journal", "", "journal database path (overrides saga.journal.path)")

	cmd.AddCommand(newListCommand(opts, open))
	cmd.AddCommand(newReplayCommand(opts, open))

	return cmd
}

func newListCommand(opts *rootOptions, open openFunc) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending compensation failures, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := open(opts)
			if err != nil {
				return err
			}
			defer rt.close()

			pending, err := rt.journal.Pending(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing pending compensations: %w", err)
			}

			if opts.Format == "json" {
				if pending == nil {
					pending = []rollback.Failure{}
				}
				return writeJSON(cmd.OutOrStdout(), pending)
			}
			return writeFailures(cmd.OutOrStdout(), pending)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (0 = all)")
	return cmd
}

func newReplayCommand(opts *rootOptions, open openFunc) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay pending compensation failures against the item store",
		Long: `Replay each pending compensation once, oldest first. Entries recorded by the
same unit of work are replayed together so a recreated item's new id is used
by that unit's later link operations. Replayed entries are resolved; failures
stay pending with their attempt count increased.

Exit codes:
  0 - every attempted entry was replayed
  1 - at least one entry failed again
  2 - command error (config, journal, or store unreachable)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := open(opts)
			if err != nil {
				return err
			}
			defer rt.close()

			if rt.store == nil {
				return errMemoryDriver
			}

			report, err := saga.NewReplayer(rt.store, rt.journal, rt.logger).Replay(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("replaying compensations: %w", err)
			}

			if opts.Format == "json" {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "attempted: %d  resolved: %d  failed: %d\n",
					report.Attempted, report.Resolved, report.Failed)
			}
			if err != nil {
				return err
			}

			if report.Failed > 0 {
				return fmt.Errorf("%w: %d of %d", errReplayIncomplete, report.Failed, report.Attempted)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to replay (0 = all)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// causeWidth truncates causes in text output.
const causeWidth = 60

func writeFailures(w io.Writer, failures []rollback.Failure) error {
	if len(failures) == 0 {
		_, err := fmt.Fprintln(w, "No pending compensations.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUNIT\tNAME\tSTEP\tACTION\tATTEMPTS\tRECORDED\tCAUSE")
	for _, f := range failures {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
			f.ID, f.UnitID, f.UnitName, f.Step, f.Operation.Description(),
			f.Attempts, f.CreatedAt.Format(time.RFC3339), truncate(f.Cause, causeWidth))
	}
	return tw.Flush()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
