package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
	"github.com/JonnyWalker81/wellness/backend/internal/repository/mocks"
)

func newTestLogService(t *testing.T) (*dailyLogService, *mocks.MockDailyLogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDailyLogRepository(ctrl)
	return &dailyLogService{logRepo: repo, now: time.Now}, repo
}

// echoCreate returns the log passed to Create as the stored row.
func echoCreate(_ context.Context, log *models.DailyLog) (*models.DailyLog, error) {
	return log, nil
}

func TestCreateLogGeneratesUUIDv7(t *testing.T) {
	svc, repo := newTestLogService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)

	created, err := svc.CreateLog(context.Background(), &models.CreateDailyLogRequest{
		LogDate:    models.NewDate(2024, time.March, 1),
		Mood:       7,
		SleepHours: 8,
	})

	require.NoError(t, err)
	assert.NoError(t, ValidateUUIDv7(created.ID, time.Now()))
	assert.Equal(t, 7, created.Mood)
	assert.Equal(t, 8.0, created.SleepHours)
}

func TestCreateLogKeepsClientID(t *testing.T) {
	svc, repo := newTestLogService(t)
	clientID := uuid.Must(uuid.NewV7()).String()
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)

	created, err := svc.CreateLog(context.Background(), &models.CreateDailyLogRequest{
		ID:      clientID,
		LogDate: models.NewDate(2024, time.March, 1),
		Mood:    5,
	})

	require.NoError(t, err)
	assert.Equal(t, clientID, created.ID)
}

func TestCreateLogRejectsNonV7ClientID(t *testing.T) {
	svc, _ := newTestLogService(t)

	_, err := svc.CreateLog(context.Background(), &models.CreateDailyLogRequest{
		ID:   uuid.NewString(),
		Mood: 5,
	})

	assert.ErrorIs(t, err, ErrNotUUIDv7)
}

func TestCreateLogWrapsRepositoryError(t *testing.T) {
	svc, repo := newTestLogService(t)
	boom := errors.New("connection reset")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.CreateLog(context.Background(), &models.CreateDailyLogRequest{Mood: 5})

	assert.ErrorIs(t, err, boom)
}

func TestGetLogNotFound(t *testing.T) {
	svc, repo := newTestLogService(t)
	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.GetLog(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestUpdateLogAppliesPartialChanges(t *testing.T) {
	svc, repo := newTestLogService(t)
	existing := &models.DailyLog{
		ID:           "log-1",
		LogDate:      models.NewDate(2024, time.March, 1),
		Mood:         4,
		SleepHours:   6,
		ExerciseType: "Yoga",
	}
	repo.EXPECT().GetByID(gomock.Any(), "log-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), "log-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, log *models.DailyLog) (*models.DailyLog, error) {
			return log, nil
		})

	mood := 8
	updated, err := svc.UpdateLog(context.Background(), "log-1", &models.UpdateDailyLogRequest{
		Mood:         &mood,
		ExerciseType: models.NullableString{Set: true, Valid: false},
	})

	require.NoError(t, err)
	assert.Equal(t, 8, updated.Mood)
	assert.Equal(t, 6.0, updated.SleepHours)
	assert.Empty(t, updated.ExerciseType)
}

func TestUpdateLogNotFound(t *testing.T) {
	svc, repo := newTestLogService(t)
	repo.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, repository.ErrNotFound)

	_, err := svc.UpdateLog(context.Background(), "gone", &models.UpdateDailyLogRequest{})

	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestDeleteLog(t *testing.T) {
	svc, repo := newTestLogService(t)
	repo.EXPECT().Delete(gomock.Any(), "log-1").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "log-2").Return(repository.ErrNotFound)

	assert.NoError(t, svc.DeleteLog(context.Background(), "log-1"))
	assert.ErrorIs(t, svc.DeleteLog(context.Background(), "log-2"), ErrLogNotFound)
}

func TestListLogsPassesOptions(t *testing.T) {
	svc, repo := newTestLogService(t)
	opts := repository.ListOptions{From: models.NewDate(2024, time.March, 1)}
	want := []models.DailyLog{{ID: "a"}, {ID: "b"}}
	repo.EXPECT().List(gomock.Any(), opts).Return(want, nil)

	got, err := svc.ListLogs(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetAlerts(t *testing.T) {
	svc, repo := newTestLogService(t)
	repo.EXPECT().GetByID(gomock.Any(), "log-1").Return(&models.DailyLog{
		ID:              "log-1",
		ScreenTime:      2,
		SleepHours:      8,
		WaterIntake:     2,
		MealQuality:     4,
		ExerciseMinutes: 5,
		Mood:            9,
	}, nil)

	alerts, err := svc.GetAlerts(context.Background(), "log-1")

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "exerciseMinutes", alerts[0].ID)
	assert.Equal(t, "moodHigh", alerts[1].ID)
}
