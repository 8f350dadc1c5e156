package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "Assistant/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyTodoList     = "todo:list"
	keyReminderList = "reminder:list"
	keyUpcoming     = "reminder:upcoming:"
)

// RecordCache caches todo and reminder read paths in Redis.
// Writes invalidate everything; TTL bounds staleness either way.
type RecordCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRecordCache returns a new RecordCache.
func NewRecordCache(rdb *redis.Client, ttl time.Duration) *RecordCache {
	return &RecordCache{rdb: rdb, ttl: ttl}
}

// GetTodoList returns the cached todo list or nil if miss.
func (c *RecordCache) GetTodoList(ctx context.Context) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, keyTodoList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetTodoList stores the todo list.
func (c *RecordCache) SetTodoList(ctx context.Context, list []dom.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyTodoList, b, c.ttl).Err()
}

// InvalidateTodos drops the todo list cache.
func (c *RecordCache) InvalidateTodos(ctx context.Context) error {
	return c.rdb.Del(ctx, keyTodoList).Err()
}

// GetReminderList returns the cached reminder list or nil if miss.
func (c *RecordCache) GetReminderList(ctx context.Context) ([]dom.Reminder, error) {
	return c.getReminders(ctx, keyReminderList)
}

// SetReminderList stores the reminder list.
func (c *RecordCache) SetReminderList(ctx context.Context, list []dom.Reminder) error {
	return c.setReminders(ctx, keyReminderList, list)
}

// GetUpcoming returns the cached upcoming slice for the given limit, or nil if miss.
func (c *RecordCache) GetUpcoming(ctx context.Context, limit int) ([]dom.Reminder, error) {
	return c.getReminders(ctx, keyUpcoming+strconv.Itoa(limit))
}

// SetUpcoming stores the upcoming slice for the given limit.
func (c *RecordCache) SetUpcoming(ctx context.Context, limit int, list []dom.Reminder) error {
	return c.setReminders(ctx, keyUpcoming+strconv.Itoa(limit), list)
}

// InvalidateReminders drops the reminder list and all upcoming keys.
func (c *RecordCache) InvalidateReminders(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyReminderList).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyUpcoming+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *RecordCache) getReminders(ctx context.Context, key string) ([]dom.Reminder, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Reminder
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *RecordCache) setReminders(ctx context.Context, key string, list []dom.Reminder) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
