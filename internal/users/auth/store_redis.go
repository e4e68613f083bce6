// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/constants"
	"github.com/taibuivan/citeline/internal/platform/document"
)

// RedisRepository stores tokens as JSON records keyed by their opaque key,
// with Redis enforcing expiry via SET EX.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (repository *RedisRepository) SaveAuthToken(context context.Context, token *AuthToken) error {
	payload, err := json.Marshal(token.Serialize())
	if err != nil {
		return apperr.Internal(err)
	}

	err = repository.client.Set(context,
		constants.RedisPrefixAuthToken+token.Key, payload, AuthTokenTTL,
	).Err()
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (repository *RedisRepository) GetAuthToken(context context.Context, key string) (*AuthToken, error) {
	payload, err := repository.client.Get(context, constants.RedisPrefixAuthToken+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Token")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return decodeAuthToken(payload)
}

// RefreshAuthToken rewrites the record so the idle TTL restarts from now.
func (repository *RedisRepository) RefreshAuthToken(context context.Context, token *AuthToken) error {
	return repository.SaveAuthToken(context, token)
}

func (repository *RedisRepository) DeleteAuthToken(context context.Context, key string) error {
	if err := repository.client.Del(context, constants.RedisPrefixAuthToken+key).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (repository *RedisRepository) SaveConfirmToken(context context.Context, token *ConfirmToken) error {
	payload, err := json.Marshal(token.Serialize())
	if err != nil {
		return apperr.Internal(err)
	}

	// Revoke the user's previous token, if any. The per-user index entry
	// shares the token's TTL, so a stale index expires with its token.
	indexKey := constants.RedisPrefixConfirmUser + token.UserID.String()

	previous, err := repository.client.Get(context, indexKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return apperr.Internal(err)
	}
	if previous != "" && previous != token.Key {
		if err := repository.client.Del(context, constants.RedisPrefixConfirmToken+previous).Err(); err != nil {
			return apperr.Internal(err)
		}
	}

	pipe := repository.client.TxPipeline()
	pipe.Set(context, constants.RedisPrefixConfirmToken+token.Key, payload, ConfirmTokenTTL)
	pipe.Set(context, indexKey, token.Key, ConfirmTokenTTL)
	if _, err := pipe.Exec(context); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (repository *RedisRepository) GetConfirmToken(context context.Context, key string) (*ConfirmToken, error) {
	payload, err := repository.client.Get(context, constants.RedisPrefixConfirmToken+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Token")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	token := &ConfirmToken{}
	var data document.Map
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := token.Deserialize(data); err != nil {
		return nil, apperr.Internal(err)
	}
	return token, nil
}

func (repository *RedisRepository) DeleteConfirmToken(context context.Context, key string) error {
	if err := repository.client.Del(context, constants.RedisPrefixConfirmToken+key).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func decodeAuthToken(payload []byte) (*AuthToken, error) {
	var data document.Map
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, apperr.Internal(err)
	}

	token := &AuthToken{}
	if err := token.Deserialize(data); err != nil {
		return nil, apperr.Internal(err)
	}
	return token, nil
}
