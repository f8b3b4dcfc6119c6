package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/storefront/internal/storefront/app"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Long:        `Print the version and Go runtime version.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{noCore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			short, _ := cmd.Flags().GetBool("short")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			if short {
				fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
				return nil
			}

			if jsonOutput {
				info := map[string]string{
					"version":   app.BuildVersion,
					"goVersion": runtime.Version(),
					"platform":  runtime.GOOS + "/" + runtime.GOARCH,
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "storefrontctl version %s\n", app.BuildVersion)
			fmt.Fprintf(w, "  go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().Bool("short", false, "print version string only")
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}
