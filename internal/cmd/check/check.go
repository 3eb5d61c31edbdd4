// Package check implements the "check" command, which runs one decision cycle.
package check

import (
	"fmt"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/nest-alarm/internal/app"
	"github.com/clambin/nest-alarm/internal/notifier"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Cmd = cobra.Command{
		Use:   "check",
		Short: "Check the room temperature now and raise the target temperature if needed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if viper.GetBool("dry-run") {
				viper.Set("controller.dryRun", true)
			}
			logger := charmer.GetLogger(cmd)
			c, err := app.NewComponents(viper.GetViper(), notifier.SLogNotifier{Logger: logger}, nil, logger)
			if err != nil {
				return err
			}
			d, err := c.Controller.Check(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return err
		},
	}

	args = charmer.Arguments{
		"dry-run": {Default: false, Help: "decide, but don't change the target temperature"},
	}
)

func init() {
	_ = charmer.SetPersistentFlags(&Cmd, viper.GetViper(), args)
}
