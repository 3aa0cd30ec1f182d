package database

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
    dsn := DSN(user, pass, host, port, name)
    db, err := sql.Open("mysql", dsn)
    if err != nil {
        return nil, err
    }

    // Pool settings; the site writes one row per contact submission.
    db.SetMaxOpenConns(10)
    db.SetMaxIdleConns(5)
    db.SetConnMaxLifetime(30 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        _ = db.Close()
        return nil, err
    }
    return db, nil
}

// DSN builds the driver connection string.  parseTime maps DATETIME to
// time.Time and loc=UTC keeps stored times consistent.  utf8mb4 is
// required for Georgian text.
func DSN(user, pass, host, port, name string) string {
    c := mysql.NewConfig()
    c.User = user
    c.Passwd = pass
    c.Net = "tcp"
    c.Addr = fmt.Sprintf("%s:%s", host, port)
    c.DBName = name
    c.ParseTime = true
    c.Loc = time.UTC
    c.Params = map[string]string{"charset": "utf8mb4"}
    return c.FormatDSN()
}

const contactMessagesDDL = `CREATE TABLE IF NOT EXISTS contact_messages (
    id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    submission_id CHAR(36)      NOT NULL,
    message_type VARCHAR(16)    NOT NULL,
    name         VARCHAR(100)   NOT NULL,
    phone        VARCHAR(32)    NOT NULL,
    email        VARCHAR(255)   NOT NULL,
    message      TEXT           NOT NULL,
    res_date     DATE           NULL,
    res_time     VARCHAR(5)     NULL,
    guests       TINYINT UNSIGNED NULL,
    created_at   DATETIME       NOT NULL,
    UNIQUE KEY uq_contact_submission (submission_id),
    KEY idx_contact_type_created (message_type, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// EnsureSchema creates the tables the server writes to.  It is idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
    if _, err := db.ExecContext(ctx, contactMessagesDDL); err != nil {
        return fmt.Errorf("create contact_messages: %w", err)
    }
    return nil
}
