package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rshade/listpager/internal/cli"
	"github.com/rshade/listpager/pkg/version"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the CLI and reports any error on stderr.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
