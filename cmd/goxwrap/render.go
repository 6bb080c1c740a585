package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	gox "github.com/germtb/gox-wrapper"
	"github.com/germtb/gox-wrapper/components/wrapper"
	"github.com/germtb/gox-wrapper/html"
)

func newRenderCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Print the wrapper around each argument as a text child",
		Example: `  goxwrap render Hello
  goxwrap render --module YourComponent one two
  goxwrap render --format tree a b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := a.sheet()
			if err != nil {
				return err
			}
			w, err := wrapper.New(sheet)
			if err != nil {
				return err
			}

			node := w.Render(gox.Props{gox.ChildrenKey: args})
			a.logger.Debug(cmd.Context(), "rendered", "children", len(args), "class", w.Class())

			out := cmd.OutOrStdout()
			switch format {
			case "html":
				if err := html.NewRenderer(cmd.Context(), out).Render(node); err != nil {
					return err
				}
				_, err = fmt.Fprintln(out)
				return err
			case "tree":
				return writeTree(out, node)
			default:
				return errors.Newf("unknown format %q: want html or tree", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or tree")
	return cmd
}

// writeTree prints one line per node, indented by depth.
func writeTree(out io.Writer, root gox.VNode) error {
	var err error
	gox.WalkTree(root, gox.WalkFunc(func(n gox.VNode, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), describe(n))
		return true
	}))
	return err
}

func describe(n gox.VNode) string {
	switch {
	case n.IsText():
		content, _ := n.GetTextContent()
		return fmt.Sprintf("%q", content)
	case n.IsFragment():
		return "<>"
	case n.IsElement():
		if class, ok := n.Props["className"].(string); ok {
			return fmt.Sprintf("<%s class=%q>", n.Tag(), class)
		}
		return "<" + n.Tag() + ">"
	case n.IsComponent():
		return "<component>"
	default:
		return "<empty>"
	}
}
