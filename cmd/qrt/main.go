// Command qrt loads, analyzes, and renders questionnaire XML documents
// (spec §4.M). It is a thin, session-less stand-in for the upload/process/
// flowchart HTTP endpoints spec.md §6 describes in prose.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "qrt",
	Short: "Load, analyze, and render questionnaire XML documents",
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./qrt.yaml)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(serveUploadCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("qrt")
	}
	viper.SetEnvPrefix("QRT")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	viper.SetDefault("output_format", "text")
	viper.SetDefault("tempdir_root", os.TempDir())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
