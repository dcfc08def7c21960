package feed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"bookmates/model"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// ReadStatusStore tracks which feed entries a user has seen, backed by redis.
// Keys are "<userId>__<entryId>". Redis only has string type, there is no
// boolean or int, so we use "1" to represent true.
type ReadStatusStore struct {
	inner     *redis.Client
	keyParser redisKeyParser
}

const (
	RedisTrue  = "1"
	RedisFalse = "0"
)

var ctx = context.Background()

// GetReadStatusStore connects to the redis instance configured via env and
// fails fast if it is unreachable.
func GetReadStatusStore() (*ReadStatusStore, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWD"),
		DB:       0, // use default DB
	})
	_, err := redisClient.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	return &ReadStatusStore{
		inner:     redisClient,
		keyParser: redisKeyParser{delimiter: "__"},
	}, nil
}

type redisKeyParser struct {
	delimiter string
}

func (r redisKeyParser) validateId(id string) bool {
	return !strings.Contains(id, r.delimiter)
}

func (r redisKeyParser) mustEncodeEntryKey(userId string, entryId string) string {
	if !r.validateId(userId) || !r.validateId(entryId) {
		panic(fmt.Errorf("invalid userId or entryId with delimiter: %s, %s, %s", userId, entryId, r.delimiter))
	}
	return fmt.Sprintf("%s%s%s", userId, r.delimiter, entryId)
}

// validateEntryIds rejects ids that cannot be encoded into redis keys. Entry
// ids arriving over the API are client input, they must never reach
// mustEncodeEntryKey unchecked.
func (r *ReadStatusStore) validateEntryIds(entryIds []string) error {
	for _, id := range entryIds {
		if !r.keyParser.validateId(id) {
			return errors.Wrap(model.ErrValidation, "invalid entry id "+id)
		}
	}
	return nil
}

// GetItemsReadStatus returns one read flag per entry id, in input order.
func (r *ReadStatusStore) GetItemsReadStatus(entryIds []string, userId string) ([]bool, error) {
	if len(entryIds) == 0 {
		return []bool{}, nil
	}
	if err := r.validateEntryIds(entryIds); err != nil {
		return nil, err
	}

	keys := []string{}
	for _, id := range entryIds {
		keys = append(keys, r.keyParser.mustEncodeEntryKey(userId, id))
	}

	res, err := r.inner.MGet(ctx, keys...).Result()
	status := []bool{}
	for _, v := range res {
		if v == nil {
			status = append(status, false)
			continue
		}
		if v == RedisTrue {
			status = append(status, true)
			continue
		}
		status = append(status, false)
	}
	return status, err
}

// SetItemsReadStatus marks the entries read or unread for the user.
func (r *ReadStatusStore) SetItemsReadStatus(entryIds []string, userId string, read bool) error {
	if err := r.validateEntryIds(entryIds); err != nil {
		return err
	}
	if read {
		keyValues := []interface{}{}
		for _, id := range entryIds {
			keyValues = append(keyValues, r.keyParser.mustEncodeEntryKey(userId, id))
			keyValues = append(keyValues, RedisTrue)
		}
		return r.inner.MSetNX(ctx, keyValues...).Err()
	}

	keys := []string{}
	for _, id := range entryIds {
		keys = append(keys, r.keyParser.mustEncodeEntryKey(userId, id))
	}
	return r.inner.Del(ctx, keys...).Err()
}
