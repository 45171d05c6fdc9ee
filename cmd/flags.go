package cmd

import (
	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/spf13/cobra"
)

// funcFlag converts a flag into config options. It returns nothing if
// the flag was not set explicitly, so config.yaml values stay intact.
type funcFlag func(cmd *cobra.Command) []config.Option

func sourceIDsFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("source-ids") {
		return nil
	}
	ids, _ := cmd.Flags().GetIntSlice("source-ids")
	return []config.Option{config.OptBuildSourceIDs(ids)}
}

func languagesFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("languages") {
		return nil
	}
	langs, _ := cmd.Flags().GetStringSlice("languages")
	return []config.Option{config.OptBuildLanguages(langs)}
}

func outputDirFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("output-dir") {
		return nil
	}
	s, _ := cmd.Flags().GetString("output-dir")
	return []config.Option{config.OptOutputDir(s)}
}

func extensionFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("extension") {
		return nil
	}
	s, _ := cmd.Flags().GetString("extension")
	return []config.Option{config.OptOutputExtension(s)}
}

func jobsFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("jobs") {
		return nil
	}
	i, _ := cmd.Flags().GetInt("jobs")
	return []config.Option{config.OptJobsNumber(i)}
}

// boolFlag creates funcFlag for a boolean flag.
func boolFlag(name string, opt func(bool) config.Option) funcFlag {
	return func(cmd *cobra.Command) []config.Option {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		b, _ := cmd.Flags().GetBool(name)
		return []config.Option{opt(b)}
	}
}

// buildFlags lists flag converters of the build command.
func buildFlags() []funcFlag {
	return []funcFlag{
		sourceIDsFlag,
		languagesFlag,
		outputDirFlag,
		extensionFlag,
		jobsFlag,
		boolFlag("separate", config.OptOutputSeparateVernaculars),
		boolFlag("subfolders", config.OptOutputUseSubfolders),
		boolFlag("sort", config.OptOutputSort),
		boolFlag("delete-empty", config.OptOutputDeleteEmpty),
	}
}

// flagOptions collects options of all explicitly set flags.
func flagOptions(cmd *cobra.Command, flags []funcFlag) []config.Option {
	var res []config.Option
	for _, f := range flags {
		res = append(res, f(cmd)...)
	}
	return res
}
