package profileRepository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"VoiceCommerce/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const profileKey = "storefront:user_profile"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type redisRepository struct {
	client *redis.Client
}

func NewRedis() Repository {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisRepository{client: client}
}

func (r *redisRepository) Profile(ctx context.Context) (entity.UserProfile, error) {
	var profile entity.UserProfile

	val, err := r.client.Get(ctx, profileKey).Result()
	if errors.Is(err, redis.Nil) {
		return profile, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading user profile: %v", err))
		return profile, err
	}

	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		logrus.Error(fmt.Sprintf("Error decoding user profile: %v", err))
		return entity.UserProfile{}, err
	}
	return profile, nil
}

func (r *redisRepository) Save(ctx context.Context, profile entity.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, profileKey, data, 0).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error saving user profile: %v", err))
		return err
	}
	return nil
}
