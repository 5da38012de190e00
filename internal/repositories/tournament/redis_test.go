package tournament

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/raceboard/ludo/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testTournament(code string) *models.Tournament {
	return &models.Tournament{
		Code:         code,
		Name:         "Friday Night Cup",
		Participants: map[string]*models.Participant{},
		Status:       models.TournamentStatusRegistration,
		EntryFee:     50,
		RewardAmount: 1000,
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetTournament() {
	err := s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Tournament: s.testTournament("TRN001"),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetTournament(context.Background(), &GetTournamentInput{Code: "TRN001"})
	s.Require().NoError(err)
	s.Equal("TRN001", retrieved.Code)
	s.Equal(models.TournamentStatusRegistration, retrieved.Status)
	s.Equal(int64(1000), retrieved.RewardAmount)
}

func (s *RedisRepositoryTestSuite) TestCreateTournamentDuplicateCode() {
	err := s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Tournament: s.testTournament("TRN001"),
	})
	s.Require().NoError(err)

	err = s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Tournament: s.testTournament("TRN001"),
	})
	s.Require().ErrorIs(err, ErrTournamentExists)
}

func (s *RedisRepositoryTestSuite) TestGetTournamentNotFound() {
	_, err := s.repo.GetTournament(context.Background(), &GetTournamentInput{Code: "NOPE"})
	s.Require().ErrorIs(err, ErrTournamentNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateTournament() {
	s.Require().NoError(s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Tournament: s.testTournament("TRN001"),
	}))

	updated, err := s.repo.UpdateTournament(context.Background(), &UpdateTournamentInput{
		Code: "TRN001",
		Apply: func(t *models.Tournament) error {
			t.Participants["player-1"] = &models.Participant{
				PlayerID: "player-1",
				JoinedAt: s.testNow,
				Status:   models.ParticipantStatusWaiting,
			}
			t.SeedOrder = append(t.SeedOrder, "player-1")
			t.RegisteredPlayers++
			t.CurrentPlayers++
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(1, updated.RegisteredPlayers)

	retrieved, err := s.repo.GetTournament(context.Background(), &GetTournamentInput{Code: "TRN001"})
	s.Require().NoError(err)
	s.Require().Contains(retrieved.Participants, "player-1")
	s.Equal([]string{"player-1"}, retrieved.SeedOrder)
}

// Concurrent completion calls must elect exactly one owner.
func (s *RedisRepositoryTestSuite) TestUpdateTournamentExactlyOnceCompletion() {
	s.Require().NoError(s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Tournament: s.testTournament("TRN001"),
	}))

	alreadyCompleted := errors.New("already completed")

	const callers = 8
	var owners int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.UpdateTournament(context.Background(), &UpdateTournamentInput{
				Code: "TRN001",
				Apply: func(t *models.Tournament) error {
					if t.Status == models.TournamentStatusCompleted {
						return alreadyCompleted
					}
					t.Status = models.TournamentStatusCompleted
					return nil
				},
			})
			if err == nil {
				mu.Lock()
				owners++
				mu.Unlock()
			} else {
				s.ErrorIs(err, alreadyCompleted)
			}
		}()
	}
	wg.Wait()

	s.Equal(1, owners)
}

func (s *RedisRepositoryTestSuite) TestOpenTournamentsIndex() {
	s.Require().NoError(s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Tournament: s.testTournament("TRN001"),
	}))
	s.Require().NoError(s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Tournament: s.testTournament("TRN002"),
	}))

	open, err := s.repo.GetOpenTournaments(context.Background(), &GetOpenTournamentsInput{})
	s.Require().NoError(err)
	s.Len(open.Tournaments, 2)

	// Starting the bracket drops it from the open set
	_, err = s.repo.UpdateTournament(context.Background(), &UpdateTournamentInput{
		Code: "TRN001",
		Apply: func(t *models.Tournament) error {
			t.Status = models.TournamentStatusInProgress
			return nil
		},
	})
	s.Require().NoError(err)

	open, err = s.repo.GetOpenTournaments(context.Background(), &GetOpenTournamentsInput{})
	s.Require().NoError(err)
	s.Require().Len(open.Tournaments, 1)
	s.Equal("TRN002", open.Tournaments[0].Code)
}
