package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/dom/domdbg"
	"github.com/npillmayer/cascade/fixture"
	"github.com/npillmayer/cascade/resource"
	"github.com/spf13/cobra"
)

// errExpectations is returned if --verify is set and a fixture's
// expectations are not met.
var errExpectations = errors.New("expectations not met")

var resolveCmd = &cobra.Command{
	Use:   "resolve FIXTURE",
	Short: "Resolve and apply the class lists of a fixture document",
	Long: `Loads a fixture document, resolves the class list of every node and
prints the document tree with the properties applied to each node, followed
by any diagnostics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outermost, _ := cmd.Flags().GetBool("outermost-first")
		verify, _ := cmd.Flags().GetBool("verify")
		format, _ := cmd.Flags().GetString("format")
		return runResolve(cmd, args[0], outermost, verify, format)
	},
}

func init() {
	resolveCmd.Flags().Bool("outermost-first", false, "let outer scopes shadow inner ones")
	resolveCmd.Flags().Bool("verify", false, "check the expectations of the fixture")
	resolveCmd.Flags().String("format", "tree", "output format (tree, dot)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, path string, outermost, verify bool, format string) error {
	if format != "tree" && format != "dot" {
		return fmt.Errorf("unknown output format %q", format)
	}
	f, err := fixture.LoadFile(path)
	if err != nil {
		return err
	}
	var diags []cascade.Diagnostic
	opts := []cascade.Option{
		cascade.WithDiagnostics(func(d cascade.Diagnostic) {
			diags = append(diags, d)
		}),
	}
	if outermost {
		opts = append(opts, cascade.WithChainOrder(resource.OutermostFirst))
	}
	doc, err := f.Document(nil, opts...)
	if err != nil {
		return err
	}
	if err = doc.Restyle(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if format == "dot" {
		if err = domdbg.ToGraphViz(doc, out, nil); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, domdbg.PrintTree(doc))
	}
	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "diagnostic: %s\n", d)
	}
	if !verify {
		return nil
	}
	mismatches := f.Verify()
	for _, m := range mismatches {
		fmt.Fprintf(cmd.ErrOrStderr(), "mismatch: %s\n", m)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %d mismatches", errExpectations, len(mismatches))
	}
	fmt.Fprintln(out, "all expectations met")
	return nil
}
