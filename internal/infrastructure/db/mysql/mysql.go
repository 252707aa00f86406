package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	defaultPingTimeout = 5 * time.Second
	connMaxIdleTime    = 2 * time.Minute
	connMaxLifetime    = 30 * time.Minute
	maxIdleConns       = 5
	maxOpenConns       = 25
)

// Config captures the settings for establishing a MySQL connection.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Connect opens a pooled connection and validates it with a ping.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", driverConfig(cfg).FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	db.SetConnMaxIdleTime(connMaxIdleTime)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetMaxOpenConns(maxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return db, nil
}

// driverConfig builds the driver settings for a connection. ClientFoundRows
// makes RowsAffected count matched rows rather than changed rows: the
// repositories treat zero affected rows on UPDATE as "no such row", and an
// update that resubmits identical values must still count as a match.
func driverConfig(cfg Config) *mysql.Config {
	dc := mysql.NewConfig()
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	dc.User = cfg.User
	dc.Passwd = cfg.Password
	dc.DBName = cfg.Database
	dc.ParseTime = true
	dc.ClientFoundRows = true
	return dc
}
