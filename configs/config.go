package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCTracesConfig struct {
	BlocksPerRequest int `mapstructure:"blocksPerRequest"`
	ParallelCalls    int `mapstructure:"parallelCalls"`
}

type RPCReceiptsConfig struct {
	ParallelCalls int `mapstructure:"parallelCalls"`
}

type RPCConfig struct {
	URL      string            `mapstructure:"url"`
	Timeout  time.Duration     `mapstructure:"timeout"`
	Traces   RPCTracesConfig   `mapstructure:"traces"`
	Receipts RPCReceiptsConfig `mapstructure:"receipts"`
}

type ScanConfig struct {
	Selectors []string `mapstructure:"selectors"`
}

type ParquetConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

type ReportsConfig struct {
	Dir     string        `mapstructure:"dir"`
	Parquet ParquetConfig `mapstructure:"parquet"`
	S3      S3Config      `mapstructure:"s3"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	Log     LogConfig     `mapstructure:"log"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Reports ReportsConfig `mapstructure:"reports"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

const (
	DEFAULT_RPC_URL            = "http://127.0.0.1:8545"
	DEFAULT_RPC_TIMEOUT        = 60 * time.Second
	DEFAULT_BLOCKS_PER_REQUEST = 100_000
	DEFAULT_REPORTS_DIR        = "reports"
	DEFAULT_METRICS_ADDR       = ":2112"
	// execTransaction(address,uint256,bytes,uint8,uint256,uint256,uint256,address,address,bytes)
	DEFAULT_SELECTOR = "0x6a761202"
)

var Cfg Config

func setDefaults() {
	viper.SetDefault("rpc.url", DEFAULT_RPC_URL)
	viper.SetDefault("rpc.timeout", DEFAULT_RPC_TIMEOUT)
	viper.SetDefault("rpc.traces.blocksPerRequest", DEFAULT_BLOCKS_PER_REQUEST)
	viper.SetDefault("rpc.traces.parallelCalls", 0)
	viper.SetDefault("rpc.receipts.parallelCalls", 0)
	viper.SetDefault("scan.selectors", []string{DEFAULT_SELECTOR})
	viper.SetDefault("reports.dir", DEFAULT_REPORTS_DIR)
	viper.SetDefault("reports.parquet.enabled", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.prettify", false)
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.addr", DEFAULT_METRICS_ADDR)
}

// LoadConfig reads the optional config file, environment and bound flags into Cfg.
// Without an explicit file, ./configs/config.yml is used when it exists.
func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else if _, err := os.Stat("./configs/config.yml"); err == nil {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

func (c *Config) Validate() error {
	if c.RPC.URL == "" {
		return fmt.Errorf("%w: rpc.url must be set", common.ErrInvalidArgument)
	}
	if c.RPC.Timeout <= 0 {
		return fmt.Errorf("%w: rpc.timeout must be positive, got %s", common.ErrInvalidArgument, c.RPC.Timeout)
	}
	if c.RPC.Traces.BlocksPerRequest <= 0 {
		return fmt.Errorf("%w: rpc.traces.blocksPerRequest must be positive, got %d", common.ErrInvalidArgument, c.RPC.Traces.BlocksPerRequest)
	}
	if c.RPC.Traces.ParallelCalls < 0 || c.RPC.Receipts.ParallelCalls < 0 {
		return fmt.Errorf("%w: parallelCalls cannot be negative", common.ErrInvalidArgument)
	}
	if len(c.Scan.Selectors) == 0 {
		return fmt.Errorf("%w: scan.selectors cannot be empty", common.ErrInvalidArgument)
	}
	for _, selector := range c.Scan.Selectors {
		if _, err := common.ResolveSelector(selector); err != nil {
			return err
		}
	}
	if c.Reports.Dir == "" {
		return fmt.Errorf("%w: reports.dir must be set", common.ErrInvalidArgument)
	}
	return nil
}
