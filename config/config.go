package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ChainConfig holds the blockchain endpoint and the fixed fee policy.
// Gas prices are decimal wei strings; there is no dynamic fee estimation.
type ChainConfig struct {
	ServiceURL       string        `mapstructure:"service_url"`
	ServiceTimeout   time.Duration `mapstructure:"service_timeout"`
	Symbol           string        `mapstructure:"symbol"`
	TransferGasPrice string        `mapstructure:"transfer_gas_price"`
	TransferGasLimit string        `mapstructure:"transfer_gas_limit"`
	ContractGasPrice string        `mapstructure:"contract_gas_price"`
	ContractGasLimit string        `mapstructure:"contract_gas_limit"`
	SweepInterval    time.Duration `mapstructure:"sweep_interval"`
	WorkerPoolSize   int64         `mapstructure:"worker_pool_size"`
	// Simulate swaps the external chain endpoint for the in-process
	// simulator. Development only.
	Simulate bool `mapstructure:"simulate"`
}

// WalletConfig holds custody-level settings. The passphrase protects every
// account seed at rest and never leaves the process.
type WalletConfig struct {
	ServiceID  string `mapstructure:"service_id"`
	Passphrase string `mapstructure:"passphrase"`
	Testnet    bool   `mapstructure:"testnet"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: EHW_ (ETH Hot Wallet).
// Nested keys use underscore: EHW_DATABASE_HOST, EHW_WALLET_PASSPHRASE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "hot_wallet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("chain.service_url", "http://localhost:8545")
	v.SetDefault("chain.service_timeout", "10m")
	v.SetDefault("chain.symbol", "ETH")
	v.SetDefault("chain.transfer_gas_price", "20000000000")
	v.SetDefault("chain.transfer_gas_limit", "100000")
	v.SetDefault("chain.contract_gas_price", "12000000000")
	v.SetDefault("chain.contract_gas_limit", "2300000")
	v.SetDefault("chain.sweep_interval", "30s")
	v.SetDefault("chain.worker_pool_size", 8)
	v.SetDefault("chain.simulate", false)
	v.SetDefault("wallet.service_id", "")
	v.SetDefault("wallet.passphrase", "")
	v.SetDefault("wallet.testnet", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: EHW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("EHW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
