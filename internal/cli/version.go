package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hallon-go/hallon/pkg/hallon"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wrapper, API and native library versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hallon %s\n", hallon.WrapperVersion())
			fmt.Fprintf(out, "libspotify api %d\n", hallon.APIVersion)

			b := a.binding()
			if err := b.Init(); err != nil {
				fmt.Fprintf(out, "libspotify unavailable: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "libspotify build %s\n", b.LibraryBuildID())
			return nil
		},
	}
}
