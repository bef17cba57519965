package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *RedisStore
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.store = NewRedisWithClient(client, 3)
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *RedisStoreSuite) TestEmpty() {
	top, err := s.store.Top(s.ctx, "tetris", 10)
	s.Require().NoError(err)
	s.NotNil(top)
	s.Empty(top)
}

func (s *RedisStoreSuite) TestAppendRanksAndTruncates() {
	for i, score := range []int{100, 500, 300, 200, 400} {
		at := time.Unix(int64(1000+i), 0)
		s.Require().NoError(s.store.Append(s.ctx, "tetris", HighScore{Score: score, At: at}))
	}

	top, err := s.store.Top(s.ctx, "tetris", 0)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(500, top[0].Score)
	s.Equal(400, top[1].Score)
	s.Equal(300, top[2].Score)
	s.True(top[0].At.Equal(time.Unix(1001, 0)))

	members, err := s.mini.ZMembers(scoresKey("tetris"))
	s.Require().NoError(err)
	s.Len(members, 3, "set trimmed on append")
}

func (s *RedisStoreSuite) TestTiesKeepInsertionOrder() {
	first := time.Unix(1000, 0)
	second := time.Unix(2000, 0)
	s.Require().NoError(s.store.Append(s.ctx, "tetris", HighScore{Score: 40, At: first}))
	s.Require().NoError(s.store.Append(s.ctx, "tetris", HighScore{Score: 40, At: second}))

	top, err := s.store.Top(s.ctx, "tetris", 0)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.True(top[0].At.Equal(first))
	s.True(top[1].At.Equal(second))
}

func (s *RedisStoreSuite) TestGamesAreSeparate() {
	s.Require().NoError(s.store.Append(s.ctx, "tetris", HighScore{Score: 10, At: time.Now()}))
	s.Require().NoError(s.store.Append(s.ctx, "tetris_classic", HighScore{Score: 20, At: time.Now()}))

	top, err := s.store.Top(s.ctx, "tetris_classic", 0)
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal(20, top[0].Score)
}

func (s *RedisStoreSuite) TestCorruptMember() {
	_, err := s.mini.ZAdd(scoresKey("tetris"), 10, "garbage")
	s.Require().NoError(err)

	top, err := s.store.Top(s.ctx, "tetris", 0)
	s.True(errors.Is(err, ErrCorrupt))
	s.Empty(top)
}

func (s *RedisStoreSuite) TestClear() {
	s.Require().NoError(s.store.Append(s.ctx, "tetris", HighScore{Score: 10, At: time.Now()}))
	s.Require().NoError(s.store.Clear(s.ctx, "tetris"))

	top, err := s.store.Top(s.ctx, "tetris", 0)
	s.Require().NoError(err)
	s.Empty(top)
	s.False(s.mini.Exists(seqKey("tetris")))
}

func (s *RedisStoreSuite) TestOpenViaDSN() {
	store, err := Open("redis://"+s.mini.Addr()+"/0", 0)
	s.Require().NoError(err)
	defer store.Close()

	s.Require().NoError(store.Append(s.ctx, "tetris", HighScore{Score: 7, At: time.Now()}))
	best, err := Best(s.ctx, store, "tetris")
	s.Require().NoError(err)
	s.Equal(7, best)
}
