package db

import "time"

// Option -.
type Option func(*SQL)

// MaxPoolSize -.
func MaxPoolSize(size int) Option {
	return func(c *SQL) {
		if size > 0 {
			c.maxPoolSize = size
		}
	}
}

// ConnAttempts -.
func ConnAttempts(attempts int) Option {
	return func(c *SQL) {
		if attempts > 0 {
			c.connAttempts = attempts
		}
	}
}

// ConnTimeout -.
func ConnTimeout(timeout time.Duration) Option {
	return func(c *SQL) {
		c.connTimeout = timeout
	}
}

// EnableForeignKeys turns on sqlite foreign key enforcement.
func EnableForeignKeys(enable bool) Option {
	return func(c *SQL) {
		c.enableForeignKeys = enable
	}
}

// SkipMigrations leaves the schema untouched.
func SkipMigrations() Option {
	return func(c *SQL) {
		c.skipMigrations = true
	}
}
