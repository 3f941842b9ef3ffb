package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedDirectory(t *testing.T, repo *fakeDoctorRepo) (*CachedDoctorDirectory, *miniredis.Miniredis, *logtest.Hook) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log, hook := logtest.NewNullLogger()
	return NewCachedDoctorDirectory(repo, client, log, time.Minute), mr, hook
}

func TestCachedDoctorDirectory_CachesHits(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: roster()}
	dir, mr, _ := newCachedDirectory(t, repo)
	ctx := context.Background()

	first, err := dir.FindDoctor(ctx, "Popescu")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := dir.FindDoctor(ctx, " popescu ")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.lookups)
	assert.True(t, mr.Exists("doctor:lookup:popescu"))
	assert.Equal(t, time.Minute, mr.TTL("doctor:lookup:popescu"))
}

func TestCachedDoctorDirectory_MissesAreNotCached(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: roster()}
	dir, mr, _ := newCachedDirectory(t, repo)
	ctx := context.Background()

	got, err := dir.FindDoctor(ctx, "House")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists("doctor:lookup:house"))

	_, _ = dir.FindDoctor(ctx, "House")
	assert.Equal(t, 2, repo.lookups)
}

func TestCachedDoctorDirectory_RedisDownFallsBack(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: roster()}
	dir, mr, hook := newCachedDirectory(t, repo)
	mr.Close()

	got, err := dir.FindDoctor(context.Background(), "Ionescu")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)

	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestCachedDoctorDirectory_RepositoryErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	dir, _, _ := newCachedDirectory(t, &fakeDoctorRepo{err: boom})

	_, err := dir.FindDoctor(context.Background(), "Popescu")
	assert.ErrorIs(t, err, boom)
}

func TestCachedDoctorDirectory_FindAllAndInvalidate(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: roster()}
	dir, mr, _ := newCachedDirectory(t, repo)
	ctx := context.Background()

	doctors, err := dir.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)

	_, _ = dir.FindAll(ctx)
	assert.Equal(t, 1, repo.lists)

	_, _ = dir.FindDoctor(ctx, "Popescu")
	require.NoError(t, dir.Invalidate(ctx))
	assert.False(t, mr.Exists("doctor:roster"))
	assert.False(t, mr.Exists("doctor:lookup:popescu"))

	_, _ = dir.FindAll(ctx)
	assert.Equal(t, 2, repo.lists)
}

func TestInvalidateDoctorCache_KeepsUnrelatedKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, mr.Set("doctor:roster", "[]"))
	require.NoError(t, mr.Set("doctor:lookup:ionescu", "{}"))
	require.NoError(t, mr.Set("access_token:7:abc", "1"))

	require.NoError(t, InvalidateDoctorCache(context.Background(), client))

	assert.False(t, mr.Exists("doctor:roster"))
	assert.False(t, mr.Exists("doctor:lookup:ionescu"))
	assert.True(t, mr.Exists("access_token:7:abc"))
}
