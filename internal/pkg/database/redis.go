package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type DB struct {
	*redis.Client
}

func NewRedisDB(addr, password string, db int) (*DB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 25,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &DB{Client: client}, nil
}
