package protocol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fireant-io/tap-fireant/constants"
	"github.com/fireant-io/tap-fireant/logger"
	"github.com/fireant-io/tap-fireant/types"
	"github.com/fireant-io/tap-fireant/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath  string
	catalogPath string
	statePath   string
	noSave      bool

	catalog *types.Catalog
	state   *types.State

	commands  = []*cobra.Command{}
	connector Driver
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tap-fireant",
	Short: "FireAnt market-data extraction connector",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		viper.SetDefault(constants.ConfigFolder, os.TempDir())
		viper.SetDefault(constants.StatePath, filepath.Join(os.TempDir(), "state.json"))
		viper.SetDefault(constants.StreamsPath, filepath.Join(os.TempDir(), "streams.json"))

		if !noSave && configPath != "not-set" {
			configFolder := filepath.Dir(configPath)
			viper.Set(constants.ConfigFolder, configFolder)
			viper.Set(constants.StatePath, utils.Ternary(statePath == "", filepath.Join(configFolder, "state.json"), statePath).(string))
			viper.Set(constants.StreamsPath, filepath.Join(configFolder, "streams.json"))
		}

		// logger uses CONFIG_FOLDER
		logger.Init()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'tap-fireant --help' to display usage guide", args[0])
		}

		return nil
	},
}

// CreateRootCommand binds the driver to the protocol commands.
func CreateRootCommand(driver Driver) *cobra.Command {
	connector = driver
	RootCmd.AddCommand(commands...)
	return RootCmd
}

func init() {
	commands = append(commands, specCmd, checkCmd, discoverCmd, syncCmd)
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "not-set", "(Required) Config for connector")
	RootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "", "", "(Optional) Catalog narrowing the synced streams")
	RootCmd.PersistentFlags().StringVarP(&statePath, "state", "", "", "(Optional) State file for incremental resume")
	RootCmd.PersistentFlags().BoolVarP(&noSave, "no-save", "", false, "(Optional) Skip writing runtime artifacts next to the config")
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
