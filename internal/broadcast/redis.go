package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Envelope - конверт реал-тайм события, публикуемого в канал
type Envelope struct {
	Event     string    `json:"event"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// RedisBroadcaster - реализация реал-тайм вещания через Redis Pub/Sub.
// Подписчики (шлюзы веб-сокетов, админские консоли) слушают логические каналы
// вида private:responder:<id>, private:admin, public:reports.
type RedisBroadcaster struct {
	redisClient *redis.Client
}

// NewRedisBroadcaster создает новый RedisBroadcaster
func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{
		redisClient: client,
	}
}

// Broadcast публикует событие в логический канал. Отправка одного канала
// независима от остальных: вызывающий решает, продолжать ли при сбое.
func (b *RedisBroadcaster) Broadcast(ctx context.Context, channel, event string, payload any) error {
	envelope := Envelope{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast envelope: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to channel %s: %w", channel, err)
	}
	return nil
}
