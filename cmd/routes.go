package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"serviceboard/handlers"
	"serviceboard/routes"

	"github.com/spf13/cobra"
)

var authLabels = map[routes.AuthMode]string{
	routes.Public:    "public",
	routes.Protected: "cookie",
	routes.Scoped:    "cookie+scope",
}

// serviceboard routes: print the route table.
var routeListCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every registered route",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tAUTH")
		fmt.Fprintln(w, "------\t----\t----")
		for _, rt := range routes.Table(&handlers.HandlerBundle{}) {
			auth := authLabels[rt.Auth]
			if rt.Auth == routes.Scoped {
				auth += ":" + rt.ScopeParam
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Method, rt.Path, auth)
		}
		return w.Flush()
	},
}
