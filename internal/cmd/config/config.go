// Package config implements the "config" command: it lists the thermostats & structures visible to the alarm.
package config

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/nest-alarm/internal/app"
	"github.com/clambin/nest-alarm/internal/thermostat"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var Cmd = cobra.Command{
	Use:   "config",
	Short: "Show the thermostats & structures visible to the alarm",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := app.NewComponents(viper.GetViper(), nil, nil, charmer.GetLogger(cmd))
		if err != nil {
			return err
		}
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		defer func() { _ = encoder.Close() }()
		return ShowConfig(cmd.Context(), c.Client, encoder)
	},
}

type Encoder interface {
	Encode(any) error
}

type SnapshotGetter interface {
	GetSnapshot(ctx context.Context) (thermostat.Snapshot, error)
}

type thermostatEntry struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Structure string `json:"structure" yaml:"structure"`
}

type structureEntry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type report struct {
	Thermostats []thermostatEntry `json:"thermostats" yaml:"thermostats"`
	Structures  []structureEntry  `json:"structures" yaml:"structures"`
}

func ShowConfig(ctx context.Context, c SnapshotGetter, e Encoder) error {
	snapshot, err := c.GetSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("get thermostats: %w", err)
	}

	var r report
	for id, t := range snapshot.Thermostats {
		r.Thermostats = append(r.Thermostats, thermostatEntry{ID: id, Name: t.Name, Structure: t.StructureID})
	}
	slices.SortFunc(r.Thermostats, func(a, b thermostatEntry) int { return strings.Compare(a.ID, b.ID) })
	for id, s := range snapshot.Structures {
		r.Structures = append(r.Structures, structureEntry{ID: id, Name: s.Name})
	}
	slices.SortFunc(r.Structures, func(a, b structureEntry) int { return strings.Compare(a.ID, b.ID) })

	return e.Encode(r)
}
