// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/katalvlaran/linalg/errs"
)

// DefaultBusyTimeoutMS is how long a sqlite connection waits on a locked
// database file before failing.
const DefaultBusyTimeoutMS = 5000

// Database locates the persistent archive: one sqlite file, or postgres
// sources with optional read replicas. Configuring both kinds is an error.
type Database struct {
	Sqlite        string  `json:"sqlite"`
	BusyTimeoutMS int     `json:"sqlite_busy_timeout_ms,omitempty"`
	Postgres      DSNList `json:"postgres"`
	Replicas      DSNList `json:"postgres_readonly"`
}

// Connections holds one dialector per configured DSN.
type Connections struct {
	Sources  []gorm.Dialector
	Replicas []gorm.Dialector
}

// Routed reports whether queries must be spread over several connections.
func (c Connections) Routed() bool { return len(c.Sources)+len(c.Replicas) > 1 }

// Enabled reports whether an archive database is configured.
func (c Database) Enabled() bool {
	return c.Sqlite != "" || len(c.Postgres) > 0 || len(c.Replicas) > 0
}

// Validate rejects configurations that name no writable database or mix
// sqlite with postgres.
func (c Database) Validate() error {
	switch {
	case !c.Enabled():
		return fmt.Errorf("config database: %w", errs.New(errs.NotInitialized, "no database configured"))
	case c.Sqlite != "" && (len(c.Postgres) > 0 || len(c.Replicas) > 0):
		return fmt.Errorf("config database: %w", errs.New(errs.InvalidArgument, "sqlite and postgres are both configured"))
	case c.Sqlite == "" && len(c.Postgres) == 0:
		return fmt.Errorf("config database: %w", errs.New(errs.InvalidArgument, "postgres read replicas without a writable source"))
	case c.BusyTimeoutMS < 0:
		return fmt.Errorf("config database: %w", errs.New(errs.InvalidArgument, "negative sqlite busy timeout %d", c.BusyTimeoutMS))
	}

	return nil
}

// Connect validates c and opens a dialector per DSN.
func (c Database) Connect() (Connections, error) {
	if err := c.Validate(); err != nil {
		return Connections{}, err
	}
	if c.Sqlite != "" {
		return Connections{Sources: []gorm.Dialector{sqlite.Open(c.sqliteDSN())}}, nil
	}
	var conns Connections
	for _, dsn := range c.Postgres {
		conns.Sources = append(conns.Sources, postgres.Open(dsn))
	}
	for _, dsn := range c.Replicas {
		conns.Replicas = append(conns.Replicas, postgres.Open(dsn))
	}

	return conns, nil
}

// sqliteDSN appends the busy timeout to the configured path.
func (c Database) sqliteDSN() string {
	timeout := c.BusyTimeoutMS
	if timeout == 0 {
		timeout = DefaultBusyTimeoutMS
	}
	sep := "?"
	if strings.Contains(c.Sqlite, "?") {
		sep = "&"
	}

	return fmt.Sprintf("%s%s_busy_timeout=%d", c.Sqlite, sep, timeout)
}

// DSNList is a list of connection strings. In JSON it is written as a single
// string when it holds one DSN and as an array otherwise; blank entries are
// rejected.
type DSNList []string

func (l *DSNList) UnmarshalJSON(data []byte) error {
	var list []string
	switch trimmed := strings.TrimSpace(string(data)); {
	case trimmed == "null":
		*l = nil
		return nil
	case strings.HasPrefix(trimmed, "["):
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
	default:
		var dsn string
		if err := json.Unmarshal(data, &dsn); err != nil {
			return err
		}
		list = []string{dsn}
	}
	for i, dsn := range list {
		list[i] = strings.TrimSpace(dsn)
		if list[i] == "" {
			return errs.New(errs.InvalidArgument, "blank DSN at position %d", i)
		}
	}
	*l = list

	return nil
}

func (l DSNList) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}

	return json.Marshal([]string(l))
}
