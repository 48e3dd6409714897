package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

var Ctx = context.Background()

// Load environment variables and initialize the Redis connection.
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"), // Empty if no password
		DB:       0,                           // Default DB
	})
}

// SetJSON stores v as JSON under key with an expiry. Cache failures
// are logged and swallowed; the caller already has the data.
func SetJSON(key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Println("rdx marshal error:", err)
		return
	}
	if err := Conn.Set(Ctx, key, data, ttl).Err(); err != nil {
		log.Println("rdx set error:", err)
	}
}

// GetJSON loads a cached JSON value into dest, reporting whether the
// key was present and decodable.
func GetJSON(key string, dest any) bool {
	data, err := Conn.Get(Ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Println("rdx get error:", err)
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		log.Println("rdx unmarshal error:", err)
		return false
	}
	return true
}
