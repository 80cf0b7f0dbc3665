package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hallon-go/hallon/internal/config"
	"github.com/hallon-go/hallon/pkg/hallon"
)

func newStateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Open a session and print its connection state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runState(cmd)
		},
	}
	cmd.Flags().String("appkey-file", "", "path to the binary application key")
	cmd.Flags().String("user-agent", "", "user agent (default "+hallon.DefaultUserAgent+")")
	cmd.Flags().String("settings-path", "", "settings location (default: new temporary directory)")
	cmd.Flags().String("cache-path", "", "cache location (default: settings location)")
	cmd.Flags().String("temp-root", "", "parent directory for generated settings directories")
	return cmd
}

func (a *app) runState(cmd *cobra.Command) error {
	ctx := context.Background()

	key, err := config.ReadApplicationKey(a.deps.Fs, a.cfg)
	if err != nil {
		return err
	}
	defer hallon.ZeroizeBytes(key)

	b := a.binding()
	if err := b.Init(); err != nil {
		return err
	}

	sess, err := b.NewSession(hallon.Options{
		ApplicationKey: key,
		UserAgent:      a.cfg.UserAgent,
		SettingsPath:   a.cfg.SettingsPath,
		CachePath:      a.cfg.CachePath,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			a.logger.Warn(ctx, "close error", "error", cerr)
		}
	}()

	st, err := sess.State()
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "session state", "session", sess.ID(), "state", st.Symbol())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "state: %s\n", st.Symbol())
	fmt.Fprintf(out, "settings: %s\n", sess.SettingsPath())
	fmt.Fprintf(out, "cache: %s\n", sess.CachePath())
	return nil
}
