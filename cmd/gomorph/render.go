package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gomorph/gomorph/pkg/render"
	"github.com/gomorph/gomorph/pkg/vdom"
)

func renderCmd() *cobra.Command {
	var (
		pretty bool
		output string
		items  int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo description to static HTML",
		Long: `Render the demo description to static HTML.

Useful for eyeballing the renderer's output and for diffing it
against the serialized in-memory tree.

Examples:
  gomorph render --pretty
  gomorph render --items=50 -o page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(pretty, output, items)
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().IntVarP(&items, "items", "n", 5, "Number of list items in the demo tree")

	return cmd
}

func runRender(pretty bool, output string, items int) error {
	r := render.New(render.Config{Pretty: pretty})
	html, err := r.RenderToString(demoTree(items))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if output == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(output, []byte(html+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", output, len(html)+1)
	return nil
}

func demoTree(items int) *vdom.VNode {
	return vdom.Div(vdom.ID("demo"), vdom.Class("page"),
		vdom.H1(vdom.Text("gomorph demo")),
		vdom.P(vdom.Text("A static rendering of a keyed list.")),
		vdom.Ul(
			vdom.Repeat(items, func(i int) *vdom.VNode {
				return vdom.Li(vdom.Key(i), vdom.Textf("item %d", i))
			}),
		),
	)
}
