package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/safecosts/configs"
	"github.com/thirdweb-dev/safecosts/internal/env"
	customLogger "github.com/thirdweb-dev/safecosts/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "safecosts ADDRESS_FILE START_BLOCK",
		Short: "Rank senders by the gas they spent executing Safe transactions",
		Long: "Scans every block from START_BLOCK to the current head for execTransaction calls made to the " +
			"addresses listed in ADDRESS_FILE, resolves their receipts and writes per-transaction and " +
			"per-sender gas cost reports.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          RunScan,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("safecosts failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC Url of a node serving trace_filter")
	rootCmd.PersistentFlags().Duration("rpc-timeout", 0, "Timeout of a single RPC request")
	rootCmd.PersistentFlags().Int("rpc-traces-blocksPerRequest", 0, "How many blocks to cover with one trace_filter request")
	rootCmd.PersistentFlags().Int("rpc-traces-parallelCalls", 0, "Maximum concurrent trace_filter requests (0 for no limit)")
	rootCmd.PersistentFlags().Int("rpc-receipts-parallelCalls", 0, "Maximum concurrent receipt batches (0 for no limit)")
	rootCmd.PersistentFlags().StringSlice("scan-selectors", nil, "Function selectors or signatures to match")
	rootCmd.PersistentFlags().String("reports-dir", "", "Directory the reports are written to")
	rootCmd.PersistentFlags().Bool("reports-parquet-enabled", false, "Also write the transactions report as parquet")
	rootCmd.PersistentFlags().String("reports-s3-bucket", "", "S3 bucket to upload the reports to")
	rootCmd.PersistentFlags().String("reports-s3-region", "", "S3 region")
	rootCmd.PersistentFlags().String("reports-s3-prefix", "", "S3 key prefix for the reports")
	rootCmd.PersistentFlags().String("reports-s3-endpoint", "", "S3 endpoint override")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().Bool("metrics-enabled", false, "Serve prometheus metrics while the scan runs")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Address of the metrics server")
	viper.BindPFlag("rpc.url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	viper.BindPFlag("rpc.timeout", rootCmd.PersistentFlags().Lookup("rpc-timeout"))
	viper.BindPFlag("rpc.traces.blocksPerRequest", rootCmd.PersistentFlags().Lookup("rpc-traces-blocksPerRequest"))
	viper.BindPFlag("rpc.traces.parallelCalls", rootCmd.PersistentFlags().Lookup("rpc-traces-parallelCalls"))
	viper.BindPFlag("rpc.receipts.parallelCalls", rootCmd.PersistentFlags().Lookup("rpc-receipts-parallelCalls"))
	viper.BindPFlag("scan.selectors", rootCmd.PersistentFlags().Lookup("scan-selectors"))
	viper.BindPFlag("reports.dir", rootCmd.PersistentFlags().Lookup("reports-dir"))
	viper.BindPFlag("reports.parquet.enabled", rootCmd.PersistentFlags().Lookup("reports-parquet-enabled"))
	viper.BindPFlag("reports.s3.bucket", rootCmd.PersistentFlags().Lookup("reports-s3-bucket"))
	viper.BindPFlag("reports.s3.region", rootCmd.PersistentFlags().Lookup("reports-s3-region"))
	viper.BindPFlag("reports.s3.prefix", rootCmd.PersistentFlags().Lookup("reports-s3-prefix"))
	viper.BindPFlag("reports.s3.endpoint", rootCmd.PersistentFlags().Lookup("reports-s3-endpoint"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("metrics.enabled", rootCmd.PersistentFlags().Lookup("metrics-enabled"))
	viper.BindPFlag("metrics.addr", rootCmd.PersistentFlags().Lookup("metrics-addr"))
}

func initConfig() {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
