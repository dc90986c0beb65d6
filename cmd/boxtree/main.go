// Command boxtree parses an HTML document, resolves the display value
// of its elements and prints the resulting box tree.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/boxtree/html/boxes"
	"github.com/benoitkugler/boxtree/html/tree"
	"github.com/benoitkugler/boxtree/logger"
	"github.com/benoitkugler/boxtree/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		permissive  bool
		quiet       bool
		contentType string
	)
	root := &cobra.Command{
		Use:          "boxtree [file]",
		Short:        "Build and dump the box tree of an HTML document",
		Long:         "boxtree reads an HTML document from a file (or stdin), resolves\nthe display value of each element and prints the tree of layout\nboxes, with the formatting context each box joins or establishes.",
		Args:         cobra.MaximumNArgs(1),
		Version:      version.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if quiet {
				logger.ProgressLogger.SetOutput(io.Discard)
			}
			input := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				input = f
			}

			doc, err := tree.NewHTML(input, contentType)
			if err != nil {
				return err
			}
			builder := boxes.NewBuilder(tree.GetAllComputedStyles(doc))
			builder.Permissive = permissive
			box, err := builder.Build(doc.Document.AsHtmlNode())
			if err != nil {
				return err
			}
			if box == nil {
				return fmt.Errorf("the document generates no box")
			}
			if err := boxes.CheckTree(box, builder.Arena()); err != nil {
				return fmt.Errorf("inconsistent box tree: %s", err)
			}
			boxes.PrintTree(cmd.OutOrStdout(), box, builder.Arena())
			return nil
		},
	}
	root.Flags().BoolVar(&permissive, "permissive", false, "drop subtrees that fail to build instead of aborting")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "silence progress output")
	root.Flags().StringVar(&contentType, "content-type", "", "Content-Type hint used to detect the input encoding")
	return root
}
