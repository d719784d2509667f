package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/binpatch/internal/logging"
	"github.com/yaklabco/binpatch/pkg/bytesrc"
	"github.com/yaklabco/binpatch/pkg/fsutil"
	"github.com/yaklabco/binpatch/pkg/patch"
)

func newInsertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "insert <payload> <offset> <input> <output>",
		Aliases: []string{"i"},
		Short:   "Insert bytes at an offset in a file",
		Long:    insertLongDescription,
		Args:    cobra.ExactArgs(4),
		RunE:    runInsert,
	}

	return cmd
}

const insertLongDescription = `Insert bytes at a byte offset and write the result to a new file.

No existing bytes are removed: the output is the input with the payload
spliced in at the offset (counting from 0). An offset beyond the end of the
input is an error; an offset equal to the input length appends.

Examples:
  binpatch insert "header" 0 in.bin out.bin
  binpatch insert --hex cafebabe 8 a.class a.class
  binpatch i "\x00" 16 blob.dat out.dat`

func runInsert(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	logger := logging.Default()

	payload, err := decodeBytes(rc.hex, args[0])
	if err != nil {
		return err
	}
	offset, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	inputPath, outputPath := args[2], args[3]

	logger.Debug("inserting payload",
		logging.FieldInput, inputPath,
		logging.FieldOutput, outputPath,
		logging.FieldPayload, len(payload),
		logging.FieldOffset, offset,
	)

	info, err := fsutil.Stat(inputPath)
	if err != nil {
		return err
	}

	src, err := bytesrc.Open(inputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	content, err := patch.Splice(src, offset, payload)
	if err != nil {
		return err
	}

	if err := fsutil.WriteAtomic(rc.ctx, outputPath, content, info.Mode()); err != nil {
		return err
	}

	if !rc.quiet {
		fmt.Fprint(cmd.OutOrStdout(), rc.styles.FormatInsertSummary(len(payload), offset))
	}
	return nil
}
