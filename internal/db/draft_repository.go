package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"rentwheels-backend-go/internal/config"
	"rentwheels-backend-go/internal/models"
)

const draftKeyPrefix = "listing_draft:"

// NewRedisClient creates a Redis client from the application configuration.
func NewRedisClient(appConfig *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     appConfig.RedisAddr,
		Password: appConfig.RedisPassword,
		DB:       appConfig.RedisDB,
	})
}

// PingRedis verifies the Redis connection at startup.
func PingRedis(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

// redisDraftRepository implements the DraftRepository interface on Redis.
// Drafts are stored as JSON blobs under a TTL; expiry is how an abandoned
// wizard loses its draft.
type redisDraftRepository struct {
	client *redis.Client
}

// NewRedisDraftRepository creates a new instance of redisDraftRepository.
func NewRedisDraftRepository(client *redis.Client) DraftRepository {
	if client == nil {
		log.Fatal("Redis client is not initialized for DraftRepository.")
	}
	return &redisDraftRepository{client: client}
}

// Save writes the draft under its key, resetting the TTL. Every wizard
// interaction goes through Save, so an active draft keeps sliding forward.
func (r *redisDraftRepository) Save(ctx context.Context, draft *models.ListingDraft, ttl time.Duration) error {
	if draft.ID == "" {
		return errors.New("draft ID cannot be empty for Save operation")
	}
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft '%s': %w", draft.ID, err)
	}
	if err := r.client.Set(ctx, draftKeyPrefix+draft.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft '%s': %w", draft.ID, err)
	}
	return nil
}

// Get retrieves a draft by ID. Expired and unknown drafts are
// indistinguishable; both return ErrNotFound.
func (r *redisDraftRepository) Get(ctx context.Context, draftID string) (*models.ListingDraft, error) {
	if draftID == "" {
		return nil, errors.New("draftID cannot be empty for Get operation")
	}
	payload, err := r.client.Get(ctx, draftKeyPrefix+draftID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("draft '%s' not found: %w", draftID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get draft '%s': %w", draftID, err)
	}

	var draft models.ListingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft '%s': %w", draftID, err)
	}
	return &draft, nil
}

// Delete removes a draft. Deleting an unknown draft is not an error.
func (r *redisDraftRepository) Delete(ctx context.Context, draftID string) error {
	if draftID == "" {
		return errors.New("draftID cannot be empty for Delete operation")
	}
	if err := r.client.Del(ctx, draftKeyPrefix+draftID).Err(); err != nil {
		return fmt.Errorf("failed to delete draft '%s': %w", draftID, err)
	}
	return nil
}
