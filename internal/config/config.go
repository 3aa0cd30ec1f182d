package config // package config loads application configuration from environment variables

import (
    "log"     // log reports configuration errors and halts execution
    "os"      // os provides access to environment variables
    "time"

    "github.com/joho/godotenv" // optional .env file for local development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Only APP_PORT and JWT_SECRET are required; the
// database and broker are optional and the server falls back to logging
// contact submissions when neither is configured.
type Config struct {
    Env  string // application environment (e.g. "dev", "prod")
    Port string // HTTP port to listen on

    DBUser string // database username; empty disables MySQL
    DBPass string // database password (optional)
    DBHost string // database host address
    DBPort string // database port number
    DBName string // database name

    RabbitURL string // AMQP URL; empty disables the contact queue

    JWTSecret         string // secret used to sign admin JWTs
    AccessTTLMin      int    // access token time-to-live in minutes
    AdminEmail        string // login of the single restaurant admin
    AdminPasswordHash string // bcrypt hash of the admin password

    SubmitTimeout time.Duration // upper bound for one contact submission
}

// DBEnabled reports whether MySQL settings were provided.
func (c Config) DBEnabled() bool { return c.DBUser != "" && c.DBHost != "" && c.DBName != "" }

// Load reads configuration values from the environment and returns a
// Config.  A .env file in the working directory is loaded first when
// present; real environment variables win over it.  Missing required
// values cause the program to exit with a fatal log message.
func Load() Config {
    _ = godotenv.Load() // absent .env is fine

    return Config{
        Env:               envStr("APP_ENV", "dev"),
        Port:              must("APP_PORT"),
        DBUser:            os.Getenv("DB_USER"),
        DBPass:            os.Getenv("DB_PASS"),
        DBHost:            os.Getenv("DB_HOST"),
        DBPort:            envStr("DB_PORT", "3306"),
        DBName:            os.Getenv("DB_NAME"),
        RabbitURL:         rabbitURL(),
        JWTSecret:         must("JWT_SECRET"),
        AccessTTLMin:      envInt("ACCESS_TOKEN_TTL_MIN", 60),
        AdminEmail:        os.Getenv("ADMIN_EMAIL"),
        AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
        SubmitTimeout:     envDur("CONTACT_SUBMIT_TIMEOUT", 5*time.Second),
    }
}

// rabbitURL accepts RABBITMQ_URL or the older AMQP_URL.
func rabbitURL() string {
    if v := os.Getenv("RABBITMQ_URL"); v != "" {
        return v
    }
    return os.Getenv("AMQP_URL")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

