package infra

import (
	"fmt"
	"time"
)

type PgConfig struct {
	ConnectionString string
	Database         string
	Hostname         string
	Password         string
	Port             string
	User             string
	SslMode          string
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}

	if config.SslMode == "" {
		config.SslMode = "prefer"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s database=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, config.SslMode)
}

// CustomerProfileConfig points to the external customer profile service
// holding the contact person records of partner locations.
type CustomerProfileConfig struct {
	BaseUrl string
	ApiKey  string
	Timeout time.Duration
}

// GeocodingConfig points to the reverse geocoding service used to resolve
// a coordinate to a country code.
type GeocodingConfig struct {
	BaseUrl string
	Timeout time.Duration
}
