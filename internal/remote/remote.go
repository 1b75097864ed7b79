package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
	"github.com/redis/go-redis/v9"
)

const probeTimeout = 2 * time.Second

// Pinger is the one remote call the application makes
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// LocalStore reports whether local persistence works
type LocalStore interface {
	Available() bool
}

// Client is the optional remote backend
type Client struct {
	rdb *redis.Client
}

// New builds a client only when both url and apiKey are set; otherwise it returns nil and the
// application runs on local storage alone. url is either a redis:// URL or a host:port address.
func New(url, apiKey string) (*Client, error) {
	if url == "" || apiKey == "" {
		utils.Info("remote backend not configured, using local vault only", nil)
		return nil, nil
	}

	var opts *redis.Options
	if strings.Contains(url, "://") {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("remote: parse url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: url}
	}
	opts.Password = apiKey

	utils.Info("remote backend configured", map[string]any{"addr": opts.Addr})
	return &Client{rdb: redis.NewClient(opts)}, nil
}

// Ping sends PING to the backend
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	return c.rdb.Ping(ctx)
}

// Addr returns the backend address
func (c *Client) Addr() string {
	return c.rdb.Options().Addr
}

// Close releases the connection pool
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Probe reports connectivity: true if the remote answers PING or local storage works.
// A nil remote is skipped.
func Probe(ctx context.Context, remote Pinger, local LocalStore) bool {
	if remote != nil && !isNilClient(remote) {
		pctx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()
		err := remote.Ping(pctx).Err()
		if err == nil {
			return true
		}
		utils.Warn("remote backend probe failed", map[string]any{"error": err.Error()})
	}
	return local != nil && local.Available()
}

func isNilClient(p Pinger) bool {
	c, ok := p.(*Client)
	return ok && c == nil
}
