/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlexicon/internal/iofs"
	"github.com/gnames/gnlexicon/internal/iologger"
	app "github.com/gnames/gnlexicon/pkg"
	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	res := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnlexicon",
		Short:   "GNlexicon builds gazetteer lists of scientific and vernacular names",
		Long: `GNlexicon converts Darwin Core taxon and vernacular-name tables
into flat lists of 'name<TAB>uri' lines, one list per kingdom-derived
class (Animal_Fauna, Plant_Flora, Fungi, ...). The lists seed named-entity
gazetteers.

Supported exports:
  * GBIF Backbone Taxonomy (variant 'backbone')
  * Catalogue of Life (variant 'catalogue'), where synonyms without
    identifier get the identifier of their accepted name

Configuration:
  ~/.config/gnlexicon/config.yaml   output layout, logging
  ~/.config/gnlexicon/sources.yaml  data sources`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnlexicon version" prefix
	res.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	res.Flags().BoolP("version", "V", false, "version for gnlexicon")

	res.AddCommand(getBuildCmd(), getSourcesCmd())
	return res
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping bootstrap records
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initDefaults(v)
	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initDefaults makes keys missing from config.yaml keep default values.
// Without it a missing boolean would be read as false.
func initDefaults(v *viper.Viper) {
	def := config.New()
	v.SetDefault("output.dir", def.Output.Dir)
	v.SetDefault("output.extension", def.Output.Extension)
	v.SetDefault("output.separate_vernaculars", def.Output.SeparateVernaculars)
	v.SetDefault("output.use_subfolders", def.Output.UseSubfolders)
	v.SetDefault("output.sort", def.Output.Sort)
	v.SetDefault("output.delete_empty", def.Output.DeleteEmpty)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.destination", def.Log.Destination)
	v.SetDefault("jobs_number", def.JobsNumber)
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNLEXICON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Output configuration
	v.BindEnv("output.dir")
	v.BindEnv("output.extension")
	v.BindEnv("output.separate_vernaculars")
	v.BindEnv("output.use_subfolders")
	v.BindEnv("output.sort")
	v.BindEnv("output.delete_empty")

	// Log configuration
	v.BindEnv("log.level")
	v.BindEnv("log.format")
	v.BindEnv("log.destination")

	// General configuration
	v.BindEnv("jobs_number")

	v.AutomaticEnv()
}
