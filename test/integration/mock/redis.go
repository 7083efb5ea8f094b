package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis pairs an in-process miniredis server with a client pointed at it.
// The rate limiter and the analytics cache share the client.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic("failed to start miniredis: " + err.Error())
	}

	return &Redis{
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		server: server,
	}
}

// Clear drops every key so each scenario starts with empty rate-limit counters and a cold analytics cache.
func (r *Redis) Clear() {
	r.server.FlushAll()
}

// Keys lists the keys currently stored, for assertions on cached analytics reports.
func (r *Redis) Keys() []string {
	return r.server.Keys()
}

func (r *Redis) Close() {
	_ = r.Client.Close()
	r.server.Close()
}
