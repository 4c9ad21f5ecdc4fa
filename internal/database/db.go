package database

import (
    "context"
    "database/sql"
    "net"
    "time"

    "github.com/go-sql-driver/mysql"
)

// DSN renders the driver connection string for the sakila store.
// DATETIME columns are parsed into time.Time in UTC.
func DSN(user, pass, host, port, name string) string {
    cfg := mysql.NewConfig()
    cfg.User = user
    cfg.Passwd = pass
    cfg.Net = "tcp"
    cfg.Addr = net.JoinHostPort(host, port)
    cfg.DBName = name
    cfg.ParseTime = true
    cfg.Loc = time.UTC
    cfg.Params = map[string]string{"charset": "utf8mb4"}
    return cfg.FormatDSN()
}

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
    db, err := sql.Open("mysql", DSN(user, pass, host, port, name))
    if err != nil {
        return nil, err
    }

    // Pool settings
    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(30 * time.Minute)

    // Ping with timeout
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        _ = db.Close()
        return nil, err
    }
    return db, nil
}
