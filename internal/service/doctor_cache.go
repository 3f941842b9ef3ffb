package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	doctorLookupKeyPrefix = "doctor:lookup:"
	doctorRosterKey       = "doctor:roster"
)

// CachedDoctorDirectory serves roster lookups from Redis and falls back to the
// database. Redis failures are logged and never fail a lookup.
type CachedDoctorDirectory struct {
	doctors     repository.DoctorRepository
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCachedDoctorDirectory(doctors repository.DoctorRepository, redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *CachedDoctorDirectory {
	return &CachedDoctorDirectory{
		doctors:     doctors,
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// FindDoctor caches hits only, so a doctor added to the roster is found on
// the next lookup.
func (c *CachedDoctorDirectory) FindDoctor(ctx context.Context, fragment string) (*entity.Doctor, error) {
	key := doctorLookupKeyPrefix + strings.ToLower(strings.TrimSpace(fragment))

	var cached entity.Doctor
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	doctor, err := c.doctors.FindDoctor(ctx, fragment)
	if err != nil || doctor == nil {
		return doctor, err
	}

	c.set(ctx, key, doctor)
	return doctor, nil
}

// FindAll returns the roster ordered by specialty and name.
func (c *CachedDoctorDirectory) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var cached []entity.Doctor
	if c.get(ctx, doctorRosterKey, &cached) {
		return cached, nil
	}

	doctors, err := c.doctors.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, doctorRosterKey, doctors)
	return doctors, nil
}

func (c *CachedDoctorDirectory) FindBySpecialty(ctx context.Context, specialty string) ([]entity.Doctor, error) {
	return c.doctors.FindBySpecialty(ctx, specialty)
}

func (c *CachedDoctorDirectory) FindByID(ctx context.Context, id uint) (*entity.Doctor, error) {
	return c.doctors.FindByID(ctx, id)
}

// Invalidate drops every cached roster entry.
func (c *CachedDoctorDirectory) Invalidate(ctx context.Context) error {
	return InvalidateDoctorCache(ctx, c.redisClient)
}

// InvalidateDoctorCache drops the cached roster and every cached lookup. It is
// run after the schema or the seed changes.
func InvalidateDoctorCache(ctx context.Context, redisClient *redis.Client) error {
	iter := redisClient.Scan(ctx, 0, doctorLookupKeyPrefix+"*", 100).Iterator()
	keys := []string{doctorRosterKey}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return redisClient.Del(ctx, keys...).Err()
}

func (c *CachedDoctorDirectory) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read doctor cache %s: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warnf("Failed to decode doctor cache %s: %+v", key, err)
		return false
	}
	return true
}

func (c *CachedDoctorDirectory) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode doctor cache %s: %+v", key, err)
		return
	}
	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write doctor cache %s: %+v", key, err)
	}
}

var _ repository.DoctorRepository = (*CachedDoctorDirectory)(nil)
