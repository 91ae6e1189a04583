package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
	"github.com/foladipo/docs-cabinet-cp2-sub000/auth"
	"github.com/foladipo/docs-cabinet-cp2-sub000/bolt"
	"github.com/foladipo/docs-cabinet-cp2-sub000/log"
	"github.com/foladipo/docs-cabinet-cp2-sub000/pagination"
	"github.com/foladipo/docs-cabinet-cp2-sub000/postgres"
)

var (
	// flags
	env string

	// logger
	logger log.Logger

	// auth
	tokens *auth.EncodeDecoder
	hasher auth.PasswordHasher

	// pagination
	defaults pagination.Defaults

	// drivers
	boltDriver     *bolt.Driver
	postgresDriver *postgres.Driver

	// stores
	documentStore docscabinet.DocumentStore
	userStore     docscabinet.UserStore
)

type Configuration struct {
	Auth struct {
		Key           string `toml:"key"`
		ValidityHours int    `toml:"validity_hours"`
	} `toml:"auth"`
	Pagination struct {
		Limit  int `toml:"limit"`
		Offset int `toml:"offset"`
	} `toml:"pagination"`
	Storage struct {
		Backend string `toml:"backend"`
	} `toml:"storage"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Postgres struct {
		DSN string `toml:"dsn"`
	} `toml:"postgres"`
	Web struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
}

var config Configuration

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "docs-cabinet",
	Short: "Document sharing service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := os.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			os.Exit(1)
		}

		if err := toml.Unmarshal(cfgData, &config); err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			os.Exit(1)
		}

		// Create logger
		logger = log.New(env)

		// Auth
		validity := time.Duration(config.Auth.ValidityHours) * time.Hour
		if validity == 0 {
			validity = 24 * time.Hour
		}
		tokens = auth.NewEncodeDecoder([]byte(config.Auth.Key), validity)
		hasher = auth.BcryptHasher{}

		// Pagination defaults
		defaults = pagination.DefaultDefaults
		if config.Pagination.Limit > 0 {
			defaults.Limit = config.Pagination.Limit
		}
		if config.Pagination.Offset > 0 {
			defaults.Offset = config.Pagination.Offset
		}

		// Stores
		switch config.Storage.Backend {
		case "postgres":
			postgresDriver = &postgres.Driver{}
			if err := postgresDriver.Open(config.Postgres.DSN); err != nil {
				logger.Fatal("could not connect to postgres:", err)
			}
			documentStore = &postgres.DocumentStore{Driver: postgresDriver}
			userStore = &postgres.UserStore{Driver: postgresDriver}
		default:
			boltDriver = &bolt.Driver{}
			if err := boltDriver.Open(config.Bolt.Store); err != nil {
				logger.Fatal("could not open bolt store:", err)
			}
			documentStore = &bolt.DocumentStore{Driver: boltDriver}
			userStore = &bolt.UserStore{Driver: boltDriver}
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if boltDriver != nil {
			boltDriver.Close()
		}
		if postgresDriver != nil {
			postgresDriver.Close()
		}
	},
}
