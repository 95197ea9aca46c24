package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the service relies on. Both
// *redis.Client and *redis.ClusterClient satisfy it.
type Client interface {
	redis.UniversalClient
}
