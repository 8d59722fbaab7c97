package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "proofing-gallery"

// ConnString renders the settings as a postgres URL. Credentials are escaped.
func (c *DatabaseConfig) ConnString() string {
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("application_name", applicationName)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// PgxConfig builds the pool settings. Idle connections never exceed the
// pool size.
func (c *DatabaseConfig) PgxConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(c.ConnString())
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = int32(c.MaxOpenConns)
	cfg.MinConns = int32(min(c.MaxIdleConns, c.MaxOpenConns))
	cfg.MaxConnLifetime = c.ConnMaxLifetime
	cfg.MaxConnIdleTime = c.ConnMaxIdleTime
	cfg.HealthCheckPeriod = 30 * time.Second

	return cfg, nil
}
