package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/binpatch/internal/logging"
	"github.com/yaklabco/binpatch/internal/ui/pretty"
	"github.com/yaklabco/binpatch/pkg/runner"
)

type locateFlags struct {
	recursive   bool
	startOffset int64
}

func newLocateCommand() *cobra.Command {
	flags := &locateFlags{}

	cmd := &cobra.Command{
		Use:     "locate <pattern> <path>...",
		Aliases: []string{"g"},
		Short:   "Report the offsets of a byte pattern in files",
		Long:    locateLongDescription,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false,
		"expand directory arguments into the files beneath them")
	cmd.Flags().Int64Var(&flags.startOffset, "start-offset", 0,
		"absolute offset to start scanning at in each file")

	return cmd
}

const locateLongDescription = `Locate every occurrence of a byte pattern and print its offsets.

For each input file, in argument order, the path is printed followed by the
match offsets in ascending order. Matches may overlap. When no file has any
match, a single "Nothing found" line is printed instead (suppressed by
--quiet).

Examples:
  binpatch locate ELF /usr/bin/true          # Find a magic string
  binpatch locate --hex 7f454c46 a.out       # Same bytes, spelled in hex
  binpatch locate -r "TODO" src/ docs/       # Recurse into directories
  binpatch g "%PDF" report.pdf               # Short alias`

func runLocate(cmd *cobra.Command, args []string, flags *locateFlags) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	logger := logging.Default()

	pattern, err := decodeBytes(rc.hex, args[0])
	if err != nil {
		return err
	}

	opts := runner.Options{
		Paths:       args[1:],
		Recursive:   flags.recursive,
		IgnoreGlobs: rc.cfg.Ignore,
		StartOffset: flags.startOffset,
	}

	logger.Debug("locating pattern",
		logging.FieldPattern, len(pattern),
		logging.FieldPaths, len(opts.Paths),
		logging.FieldRecursive, flags.recursive,
	)

	result, err := runner.Locate(rc.ctx, pattern, opts)
	if err != nil {
		return err
	}

	logger.Debug("locate finished",
		logging.FieldFilesScanned, result.Stats.FilesScanned,
		logging.FieldMatchesTotal, result.Stats.MatchesTotal,
	)

	out := cmd.OutOrStdout()
	if result.Empty() {
		if !rc.quiet {
			fmt.Fprint(out, rc.styles.FormatNothingFound())
		}
		return nil
	}

	fmt.Fprint(out, rc.styles.FormatMatches(result, pretty.DetectWidth(out)))
	return nil
}
