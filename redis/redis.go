package redis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the cache client. Redis is optional: when REDIS_ADDR is
// unset the client stays nil and every helper below becomes a no-op, so the
// API keeps working without a cache.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, running without cache")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Failed to connect to Redis, running without cache: %v", err)
		Client = nil
		return
	}
	fmt.Println("✅ Connected to Redis")
}

const slotsTTL = 60 * time.Second

func slotsKey(date, service string) string {
	return fmt.Sprintf("slots:%s:%s", date, service)
}

// GetCachedSlots returns the cached availability JSON for a date and
// service, if present.
func GetCachedSlots(date, service string) (string, bool) {
	if Client == nil {
		return "", false
	}
	val, err := Client.Get(Ctx, slotsKey(date, service)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// CacheSlots stores the availability JSON for a date and service.
func CacheSlots(date, service, payload string) {
	if Client == nil {
		return
	}
	if err := Client.Set(Ctx, slotsKey(date, service), payload, slotsTTL).Err(); err != nil {
		log.Printf("Failed to cache slots for %s/%s: %v", date, service, err)
	}
}

// InvalidateSlots drops cached availability for a date across all services.
// Called after any booking write touching that date.
func InvalidateSlots(date string, services []string) {
	if Client == nil {
		return
	}
	keys := make([]string, 0, len(services))
	for _, s := range services {
		keys = append(keys, slotsKey(date, s))
	}
	if len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate slot cache for %s: %v", date, err)
	}
}

// MarkReminderSent records that a reminder went out for an appointment.
// Returns false if one was already sent.
func MarkReminderSent(appointmentID uint) bool {
	if Client == nil {
		return true
	}
	key := fmt.Sprintf("reminder:%d", appointmentID)
	ok, err := Client.SetNX(Ctx, key, 1, 24*time.Hour).Result()
	if err != nil {
		log.Printf("Failed to mark reminder for appointment %d: %v", appointmentID, err)
		return true
	}
	return ok
}
