// Package run implements the "run" command, which starts the alarm.
package run

import (
	"github.com/clambin/go-common/charmer"
	"github.com/clambin/nest-alarm/internal/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Cmd = cobra.Command{
	Use:   "run",
	Short: "Start the alarm",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := charmer.GetLogger(cmd)
		logger.Info("nest-alarm starting", "version", cmd.Root().Version)
		defer logger.Info("nest-alarm stopped")

		a, err := app.New(viper.GetViper(), cmd.Root().Version, prometheus.DefaultRegisterer, prometheus.DefaultGatherer, logger)
		if err != nil {
			return err
		}
		return a.Run(cmd.Context())
	},
}
