// Command draftpost drafts social posts from the terminal using the same
// normalizer, provider client and template fallback as the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "draftpost",
		Short: "Draft LinkedIn-style posts from a topic and a few style knobs",
		Long: `draftpost generates one to three post drafts for a topic. When an
OpenAI-compatible API key is configured the drafts come from the model;
otherwise, or when the call fails, they are composed from fixed templates.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
				viper.SetConfigFile(cfgFile)
			}
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: ./config.yaml or ./config/config.yaml)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the draftpost version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
