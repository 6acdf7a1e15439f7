package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/conversation"

	"github.com/go-redis/redis/v8"
)

// Client persists one conversation state document per WhatsApp phone number.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// Initialize connects to Redis and verifies the connection. ttl of zero keeps
// conversation records forever.
func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

func conversationKey(phoneNumber string) string {
	return "conversation:" + phoneNumber
}

// Get loads the conversation state for a phone number. Returns nil with no
// error when the number has never been seen.
func (c *Client) Get(ctx context.Context, phoneNumber string) (*conversation.State, error) {
	val, err := c.rdb.Get(ctx, conversationKey(phoneNumber)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conversation state: %w", err)
	}

	var state conversation.State
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation state: %w", err)
	}
	return &state, nil
}

// Save upserts the conversation state keyed by its phone number.
func (c *Client) Save(ctx context.Context, state *conversation.State) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation state: %w", err)
	}
	return c.rdb.Set(ctx, conversationKey(state.PhoneNumber), jsonData, c.ttl).Err()
}

// Delete removes the conversation record for a phone number.
func (c *Client) Delete(ctx context.Context, phoneNumber string) error {
	return c.rdb.Del(ctx, conversationKey(phoneNumber)).Err()
}

// Close releases the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
