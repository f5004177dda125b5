package redis

import (
	"crypto/tls"
	"fmt"
	"sync"

	log "log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/sharedcode/redismodels"
)

// Options holds configuration for connecting to a Redis server or cluster.
type Options struct {
	// Address is the host:port of the Redis server/cluster.
	Address string
	// Password is the password used to authenticate.
	Password string
	// DB is the database index to select.
	DB int
	// TLSConfig contains TLS configuration for secure connections.
	TLSConfig *tls.Config
}

// DefaultOptions returns an Options with localhost defaults (no password, DB 0).
func DefaultOptions() Options {
	return Options{
		Address:  "localhost:6379",
		Password: "", // no password set
		DB:       0,  // use default DB
	}
}

// OptionsFromConfig converts the module level RedisConfig. URL is not handled here, see OpenWithURL.
func OptionsFromConfig(cfg redismodels.RedisConfig) Options {
	return Options{
		Address:  cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

var connection *redis.Client
var mux sync.Mutex

// IsConnectionInstantiated reports whether the package-level shared connection exists.
func IsConnectionInstantiated() bool {
	mux.Lock()
	defer mux.Unlock()
	return connection != nil
}

// OpenConnection initializes and returns the package-level shared go-redis client.
// Subsequent calls return the same client. Coordinators built by NewSharedClient use it.
func OpenConnection(options Options) (*redis.Client, error) {
	mux.Lock()
	defer mux.Unlock()

	if connection != nil {
		return connection, nil
	}

	log.Info("Opening Redis connection", "address", options.Address, "db", options.DB)
	connection = openConnection(options)
	return connection, nil
}

// OpenConnectionWithURL initializes and returns the package-level shared client using a Redis URI.
func OpenConnectionWithURL(url string) (*redis.Client, error) {
	mux.Lock()
	defer mux.Unlock()

	if connection != nil {
		return connection, nil
	}

	log.Info("Opening Redis connection with URL")
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	connection = redis.NewClient(opts)
	return connection, nil
}

// CloseConnection closes the package-level shared client, if present.
func CloseConnection() error {
	mux.Lock()
	defer mux.Unlock()
	if connection == nil {
		return nil
	}
	log.Info("Closing Redis connection")
	err := connection.Close()
	connection = nil
	return err
}

func sharedConnection() (*redis.Client, error) {
	mux.Lock()
	defer mux.Unlock()
	if connection == nil {
		return nil, fmt.Errorf("redis connection is not open; call OpenConnection first")
	}
	return connection, nil
}

func openConnection(options Options) *redis.Client {
	return redis.NewClient(&redis.Options{
		TLSConfig: options.TLSConfig,
		Addr:      options.Address,
		Password:  options.Password,
		DB:        options.DB,
	})
}
