package config

import "time"

// TimeoutConfig groups the timeouts derived from Config
type TimeoutConfig struct {
	// HTTP server
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	ShutdownTimeout    time.Duration

	// Redis round trips made outside a request (startup ping, health checks)
	HealthCheckTimeout time.Duration
}

// Timeouts returns the timeouts the server and its health checks use
func (c *Config) Timeouts() *TimeoutConfig {
	health := c.Redis.DialTimeout
	if health <= 0 {
		health = 5 * time.Second
	}

	return &TimeoutConfig{
		ServerReadTimeout:  time.Duration(c.Server.ReadTimeout) * time.Second,
		ServerWriteTimeout: time.Duration(c.Server.WriteTimeout) * time.Second,
		ServerIdleTimeout:  time.Duration(c.Server.IdleTimeout) * time.Second,
		ShutdownTimeout:    30 * time.Second,
		HealthCheckTimeout: health,
	}
}
