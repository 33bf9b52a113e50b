package roster_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils"
)

// StoreContractTestSuite runs the same behavior checks against every Store
type StoreContractTestSuite struct {
	suite.Suite
	ctx      context.Context
	newStore func(maxValueBytes int) roster.Store
}

func (s *StoreContractTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *StoreContractTestSuite) TestGetMissing() {
	store := s.newStore(0)

	_, err := store.Get(s.ctx, "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *StoreContractTestSuite) TestSetGetOverwrite() {
	store := s.newStore(0)

	s.Require().NoError(store.Set(s.ctx, roster.KeyCharacters, `[{"id":"x"}]`))
	value, err := store.Get(s.ctx, roster.KeyCharacters)
	s.Require().NoError(err)
	s.Equal(`[{"id":"x"}]`, value)

	s.Require().NoError(store.Set(s.ctx, roster.KeyCharacters, `[]`))
	value, err = store.Get(s.ctx, roster.KeyCharacters)
	s.Require().NoError(err)
	s.Equal(`[]`, value)
}

func (s *StoreContractTestSuite) TestEmptyValueIsPresent() {
	store := s.newStore(0)

	s.Require().NoError(store.Set(s.ctx, roster.KeySelectedID, ""))
	value, err := store.Get(s.ctx, roster.KeySelectedID)
	s.Require().NoError(err)
	s.Equal("", value)
}

func (s *StoreContractTestSuite) TestDelete() {
	store := s.newStore(0)

	s.Require().NoError(store.Set(s.ctx, roster.KeySelectedID, "x"))
	s.Require().NoError(store.Delete(s.ctx, roster.KeySelectedID))
	s.Require().NoError(store.Delete(s.ctx, roster.KeySelectedID))

	_, err := store.Get(s.ctx, roster.KeySelectedID)
	s.True(errors.IsNotFound(err))
}

type quotaStoreTestSuite struct {
	StoreContractTestSuite
}

func (s *quotaStoreTestSuite) TestQuotaExceeded() {
	store := s.newStore(16)

	err := store.Set(s.ctx, roster.KeyCharacters, strings.Repeat("x", 17))
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))

	_, err = store.Get(s.ctx, roster.KeyCharacters)
	s.True(errors.IsNotFound(err), "rejected write leaves no value")
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &quotaStoreTestSuite{StoreContractTestSuite{
		newStore: func(maxValueBytes int) roster.Store {
			return roster.NewMemoryStore(maxValueBytes)
		},
	}})
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, &quotaStoreTestSuite{StoreContractTestSuite{
		newStore: func(maxValueBytes int) roster.Store {
			client, cleanup := testutils.CreateTestRedisClient(t)
			t.Cleanup(cleanup)

			store, err := roster.NewRedisStore(&roster.RedisStoreConfig{
				Client:        client,
				MaxValueBytes: maxValueBytes,
			})
			if err != nil {
				t.Fatal(err)
			}
			return store
		},
	}})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreContractTestSuite{
		newStore: func(_ int) roster.Store {
			store, _ := testutils.CreateTestSQLiteStore(t)
			return store
		},
	})
}

type RedisStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	mr     *miniredis.Miniredis
	store  *roster.RedisStore
	closer func()
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.closer = cleanup

	store, err := roster.NewRedisStore(&roster.RedisStoreConfig{Client: client, Namespace: "test:"})
	s.Require().NoError(err)
	s.store = store
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.closer()
}

func (s *RedisStoreTestSuite) TestKeysAreNamespaced() {
	s.Require().NoError(s.store.Set(s.ctx, roster.KeySelectedID, "boomer"))

	value, err := s.mr.Get("test:" + roster.KeySelectedID)
	s.Require().NoError(err)
	s.Equal("boomer", value)
}

func (s *RedisStoreTestSuite) TestServerDown() {
	s.mr.Close()

	_, err := s.store.Get(s.ctx, roster.KeyCharacters)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	err = s.store.Set(s.ctx, roster.KeyCharacters, "[]")
	s.True(errors.IsUnavailable(err))
}

func (s *RedisStoreTestSuite) TestConfigValidation() {
	_, err := roster.NewRedisStore(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = roster.NewRedisStore(&roster.RedisStoreConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	store, path := testutils.CreateTestSQLiteStore(t)

	if err := store.Set(ctx, roster.KeySelectedID, "boomer"); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := roster.OpenSQLiteStore(ctx, &roster.SQLiteStoreConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	value, err := reopened.Get(ctx, roster.KeySelectedID)
	if err != nil {
		t.Fatal(err)
	}
	if value != "boomer" {
		t.Fatalf("expected boomer, got %q", value)
	}
}
