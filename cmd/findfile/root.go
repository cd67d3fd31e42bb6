package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jrobhoward/findfile/internal/version"
	"github.com/jrobhoward/findfile/pkg/config"
	"github.com/jrobhoward/findfile/pkg/logging"
	"github.com/jrobhoward/findfile/pkg/search"
)

// NewRootCmd builds the findfile command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		typeFlag  string
		cfg       *config.Config
	)

	rootCmd := &cobra.Command{
		Use:     "findfile PATTERN [ROOT...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := make(map[string]interface{})
			if cmd.Flags().Changed("type") {
				overrides["search.type"] = typeFlag
			}
			if verbosity > 0 {
				overrides["logging.verbosity"] = verbosity
			}

			var err error
			cfg, err = config.LoadWithOverrides(overrides)
			if err != nil {
				return err
			}

			logging.SetupLogger(cfg.Logging.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			roots := args[1:]
			if len(roots) == 0 {
				roots = []string{"."}
			}

			fileType, err := search.ParseFileType(cfg.Search.Type)
			if err != nil {
				return err
			}

			start := time.Now()
			paths, err := search.FindByName(roots, pattern, fileType)
			if err != nil {
				return err
			}

			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			printSummary(len(paths), time.Since(start))
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVarP(&typeFlag, "type", "t", "",
		`File kinds to match: "dir", "file" or "any" (default from config)`)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

// printSummary writes a bold match count to stderr when it is a
// terminal, leaving stdout as a clean machine-readable path list.
func printSummary(count int, elapsed time.Duration) {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return
	}
	word := "matches"
	if count == 1 {
		word = "match"
	}
	fmt.Fprintln(os.Stderr, pterm.Bold.Sprintf("%d %s in %s", count, word, elapsed.Round(time.Millisecond)))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "findfile version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			write, _ := cmd.Flags().GetBool("write")
			if !write {
				fmt.Fprintln(cmd.OutOrStdout(), content)
				return nil
			}

			path := config.UserConfigPath()
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, "Write config to the user config path instead of stdout")

	return cmd
}
