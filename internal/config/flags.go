// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-driver database driver ("postgres" or "sqlite3")
//	-d database DSN
//	-max-open-conns connection pool size
//	-max-idle-conns idle connection pool size
//	-conn-max-lifetime pooled connection lifetime (e.g. "30m")
//	-c/-config json file path with configs
//	-bcrypt-cost password hashing work factor
//	-log-level minimum log level
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		driver          string
		databaseDSN     string
		maxOpenConns    int
		maxIdleConns    int
		connMaxLifetime time.Duration
		jsonConfigPath  string
		bcryptCost      int
		logLevel        string
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&driver, "driver", "", "Database driver (postgres, sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Maximum open database connections")
	fs.IntVar(&maxIdleConns, "max-idle-conns", 0, "Maximum idle database connections")
	fs.DurationVar(&connMaxLifetime, "conn-max-lifetime", 0, "Pooled connection lifetime (e.g., 30m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Password hashing cost")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			BcryptCost: bcryptCost,
			LogLevel:   logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:          driver,
				DSN:             databaseDSN,
				MaxOpenConns:    maxOpenConns,
				MaxIdleConns:    maxIdleConns,
				ConnMaxLifetime: connMaxLifetime,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
