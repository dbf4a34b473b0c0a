package main

import (
	"fmt"
	"log"

	"github.com/fadilmartias/hr-backend/internal/config"
	"github.com/fadilmartias/hr-backend/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "hr-backend"

// Actual version can be specified in build command.
var version = "unknown"

var (
	envFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "HR backend for candidates, vacancies and interviews",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("%s version: %s\n", app, version)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Printf("%s: %v", app, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output (APP_DEBUG)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging (APP_JSON_LOG)")

	rootCmd.AddCommand(versionCmd)
}

// loadEnv loads the dotenv file and binds flags that were set explicitly so
// they take precedence over the environment.
func loadEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("could not load %s, using the process environment", envFile)
	}

	for key, name := range map[string]string{"APP_DEBUG": "debug", "APP_JSON_LOG": "json"} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := config.BindFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	appCfg := config.LoadAppConfig()
	l, err := logger.New(appCfg.JSONLog || appCfg.IsProduction(), appCfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return l.With(zap.String("app", appCfg.Name), zap.String("env", appCfg.Env)), nil
}
