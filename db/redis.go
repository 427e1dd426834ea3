// api/db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// CacheFloors stores the floor directory snapshot.
func CacheFloors(ctx context.Context, floors []model.Floor) error {
	floorsJSON, err := json.Marshal(floors)
	if err != nil {
		return fmt.Errorf("failed to marshal floors: %w", err)
	}

	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, "floors", floorsJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache floors: %w", err)
	}

	logger.Debug("Floors cached successfully", zap.Int("count", len(floors)))
	return nil
}

func GetCachedFloors(ctx context.Context) ([]model.Floor, error) {
	floorsJSON, err := RedisClient.Get(ctx, "floors").Result()
	if err == redis.Nil {
		logger.Debug("Floors not found in cache")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get floors from cache: %w", err)
	}

	var floors []model.Floor
	err = json.Unmarshal([]byte(floorsJSON), &floors)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal floors: %w", err)
	}
	return floors, nil
}

func DeleteCachedFloors(ctx context.Context) error {
	if err := RedisClient.Del(ctx, "floors").Err(); err != nil {
		return fmt.Errorf("failed to delete floors from cache: %w", err)
	}
	logger.Debug("Floors deleted from cache")
	return nil
}

// CacheFloorBeds stores one floor's bed snapshot. Bed payloads carry patient
// names, so they are encrypted at rest like every snapshot holding patient
// data.
func CacheFloorBeds(ctx context.Context, floorID int, beds []model.Bed) error {
	bedsJSON, err := json.Marshal(beds)
	if err != nil {
		return fmt.Errorf("failed to marshal beds: %w", err)
	}

	encryptedBeds, err := encrypt(bedsJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt beds: %w", err)
	}

	key := fmt.Sprintf("beds:floor:%d", floorID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encryptedBeds), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache beds: %w", err)
	}

	logger.Debug("Beds cached successfully", zap.Int("floorID", floorID), zap.Int("count", len(beds)))
	return nil
}

func GetCachedFloorBeds(ctx context.Context, floorID int) ([]model.Bed, error) {
	key := fmt.Sprintf("beds:floor:%d", floorID)
	encryptedBedsStr, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Beds not found in cache", zap.Int("floorID", floorID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get beds from cache: %w", err)
	}

	encryptedBeds, err := base64.StdEncoding.DecodeString(encryptedBedsStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode beds: %w", err)
	}

	bedsJSON, err := decrypt(encryptedBeds)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt beds: %w", err)
	}

	var beds []model.Bed
	err = json.Unmarshal(bedsJSON, &beds)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal beds: %w", err)
	}
	return beds, nil
}

func DeleteCachedFloorBeds(ctx context.Context, floorID int) error {
	key := fmt.Sprintf("beds:floor:%d", floorID)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete beds from cache: %w", err)
	}
	logger.Debug("Beds deleted from cache", zap.Int("floorID", floorID))
	return nil
}

// CacheStaffList stores the directory snapshot for one staff kind.
func CacheStaffList(ctx context.Context, role model.StaffRole, staff []model.Staff) error {
	staffJSON, err := json.Marshal(staff)
	if err != nil {
		return fmt.Errorf("failed to marshal staff list: %w", err)
	}

	key := fmt.Sprintf("staff:%s", role)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, staffJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache staff list: %w", err)
	}

	logger.Debug("Staff list cached successfully", zap.String("role", string(role)), zap.Int("count", len(staff)))
	return nil
}

func GetCachedStaffList(ctx context.Context, role model.StaffRole) ([]model.Staff, error) {
	key := fmt.Sprintf("staff:%s", role)
	staffJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Staff list not found in cache", zap.String("role", string(role)))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get staff list from cache: %w", err)
	}

	var staff []model.Staff
	err = json.Unmarshal([]byte(staffJSON), &staff)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal staff list: %w", err)
	}
	return staff, nil
}

func DeleteCachedStaffList(ctx context.Context, role model.StaffRole) error {
	key := fmt.Sprintf("staff:%s", role)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete staff list from cache: %w", err)
	}
	logger.Debug("Staff list deleted from cache", zap.String("role", string(role)))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// LockResource takes a best-effort lock so two admins cannot interleave the
// same delegate-then-retry workflow for one staff member.
func LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:%s", resourceName)
	locked, err := RedisClient.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return locked, nil
}

func UnlockResource(ctx context.Context, resourceName string) error {
	key := fmt.Sprintf("lock:%s", resourceName)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}
