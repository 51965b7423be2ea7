package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCache guarda listas de slots por (barbeiro, serviço, dia)
// com TTL curto. A invalidação é por versão: criar uma reserva
// incrementa a versão do par barbeiro/dia, tornando todas as chaves
// antigas daquele dia inalcançáveis, para qualquer serviço.
//
// Cache é acelerador, nunca fonte de verdade: qualquer erro de Redis
// vira cache miss e a leitura segue para o banco.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID string,
	serviceID string,
	day time.Time,
) ([]time.Time, bool) {

	key, err := c.slotKey(ctx, barberID, serviceID, day)
	if err != nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []time.Time
	if err := json.Unmarshal(payload, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID string,
	serviceID string,
	day time.Time,
	slots []time.Time,
) {

	key, err := c.slotKey(ctx, barberID, serviceID, day)
	if err != nil {
		return
	}

	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("cache: falha ao gravar %s: %v", key, err)
	}
}

func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	barberID string,
	day time.Time,
) {
	if err := c.rdb.Incr(ctx, c.versionKey(barberID, day)).Err(); err != nil {
		log.Printf("cache: falha ao invalidar %s/%s: %v", barberID, day.Format("2006-01-02"), err)
	}
}

func (c *AvailabilityCache) versionKey(barberID string, day time.Time) string {
	return fmt.Sprintf("availability:ver:%s:%s", barberID, day.Format("2006-01-02"))
}

func (c *AvailabilityCache) slotKey(
	ctx context.Context,
	barberID string,
	serviceID string,
	day time.Time,
) (string, error) {

	ver, err := c.rdb.Get(ctx, c.versionKey(barberID, day)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}

	return fmt.Sprintf(
		"availability:slots:%s:%s:%s:v%d",
		barberID, serviceID, day.Format("2006-01-02"), ver,
	), nil
}
