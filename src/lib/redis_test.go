package lib

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestCacheGetNameMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	NewRedisClient(rdb)
	mock.ExpectGet("hotel:name:abc").RedisNil()

	assert.Equal(t, "", CacheGetName(context.Background(), "hotel:name:abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheSetAndGetName(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	NewRedisClient(rdb)
	mock.ExpectSetEx("package:name:xyz", "Ramadan Premium Package", 2*time.Hour).SetVal("OK")
	mock.ExpectGet("package:name:xyz").SetVal("Ramadan Premium Package")

	CacheSetName(context.Background(), "package:name:xyz", "Ramadan Premium Package")
	assert.Equal(t, "Ramadan Premium Package", CacheGetName(context.Background(), "package:name:xyz"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheSetNameSkipsEmptyValue(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	NewRedisClient(rdb)

	CacheSetName(context.Background(), "hotel:name:abc", "")
	assert.NoError(t, mock.ExpectationsWereMet())
}
