package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwantia/ils"
)

// errReported marks errors that were already written to stderr in the
// exact format the user should see, so main only sets the exit status.
var errReported = errors.New("already reported")

var root = &cobra.Command{
	Use:           "ils [path]",
	Short:         "List a directory with one icon per entry type",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := "."
		if len(args) > 0 {
			query = args[0]
		}

		return run(cmd.Context(), query, os.Stdout)
	},
}

func run(ctx context.Context, query string, stdout io.Writer) error {
	listing, err := ils.NewListing()
	if err != nil {
		return err
	}

	if err := listing.ReadDirectory(ctx, query); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open '%s': %s\n", query, describe(err))
		return errReported
	}

	w := bufio.NewWriter(stdout)
	if err := listing.Render(w); err != nil {
		return err
	}

	return w.Flush()
}

// describe strips the "open <path>" prefix from path errors so the
// message reads like the kernel's own description.
func describe(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}

	return err.Error()
}

func main() {
	if err := root.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
