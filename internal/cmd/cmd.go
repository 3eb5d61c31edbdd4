package cmd

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/nest-alarm/internal/cmd/check"
	"github.com/clambin/nest-alarm/internal/cmd/config"
	"github.com/clambin/nest-alarm/internal/cmd/run"
	"github.com/clambin/nest-alarm/internal/nest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "nest-alarm",
		Short: "Warms up the room before the alarm goes off",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	RootCmd.PersistentFlags().Bool("debug", false, "Log debug messages")
	_ = viper.BindPFlag("debug", RootCmd.PersistentFlags().Lookup("debug"))

	RootCmd.AddCommand(&run.Cmd, &check.Cmd, &config.Cmd)
}

var args = charmer.Arguments{
	"debug":               {Default: false, Help: "Log debug messages"},
	"thermostat.provider": {Default: "nest", Help: "Thermostat provider (nest|tado)"},
	"thermostat.name":     {Default: "", Help: "Name of the thermostat to control (default: first thermostat)"},
	"nest.url":            {Default: nest.DefaultURL, Help: "Nest API URL"},
	"nest.clientID":       {Default: "", Help: "Nest OAuth client ID"},
	"nest.clientSecret":   {Default: "", Help: "Nest OAuth client secret"},
	"nest.redirectURL":    {Default: "http://localhost:3000/auth/nest/callback", Help: "Nest OAuth redirect URL"},
	"tado.username":       {Default: "", Help: "Tadoº username"},
	"tado.password":       {Default: "", Help: "Tadoº password"},
	"tado.clientSecret":   {Default: "", Help: "Tadoº client secret"},
	"sensor.path":         {Default: "/tmp/w1_slave", Help: "Path of the 1-wire temperature sensor"},
	"store.path":          {Default: "persist/store.yaml", Help: "Path of the key/value store"},
	"alarm.leadTime":      {Default: 30 * time.Minute, Help: "Time before the alarm to check the temperature"},
	"controller.schedule": {Default: "", Help: "Cron schedule for additional checks (optional)"},
	"controller.dryRun":   {Default: false, Help: "Decide, but don't change the target temperature"},
	"poller.interval":     {Default: time.Minute, Help: "Poller interval"},
	"server.addr":         {Default: ":3000", Help: "Address of the alarm & login endpoints"},
	"server.static":       {Default: "", Help: "Directory with static content (optional)"},
	"exporter.addr":       {Default: ":9090", Help: "Address of Prometheus exporter"},
	"slack.token":         {Default: "", Help: "Slack token"},
	"slack.channel":       {Default: "", Help: "Slack channel for notifications"},
	"mqtt.broker":         {Default: "", Help: "MQTT broker (optional)"},
	"mqtt.topic":          {Default: "nest-alarm/decision", Help: "MQTT topic for decisions"},
	"mqtt.clientID":       {Default: "nest-alarm", Help: "MQTT client ID"},
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/nest-alarm/")
		viper.AddConfigPath("$HOME/.nest-alarm")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	if err := charmer.SetDefaults(viper.GetViper(), args); err != nil {
		panic("failed to set viper defaults: " + err.Error())
	}

	viper.SetEnvPrefix("NEST_ALARM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFilename != "" || !errors.As(err, &notFound) {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}
