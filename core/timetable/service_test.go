package timetable

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level string
	msg   string
}

type loggerMock struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *loggerMock) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg})
}

func (l *loggerMock) Debug(msg string, _ ...interface{}) { l.log("debug", msg) }
func (l *loggerMock) Info(msg string, _ ...interface{})  { l.log("info", msg) }
func (l *loggerMock) Warn(msg string, _ ...interface{})  { l.log("warn", msg) }
func (l *loggerMock) Error(msg string, _ ...interface{}) { l.log("error", msg) }
func (l *loggerMock) Fatal(msg string, _ ...interface{}) { l.log("fatal", msg) }

func (l *loggerMock) levelMessages(level string) []string {
	var msgs []string
	for _, e := range l.entries {
		if e.level == level {
			msgs = append(msgs, e.msg)
		}
	}
	return msgs
}

type repoMock struct {
	current *Timetable
	saveErr error
}

func (r *repoMock) Save(_ context.Context, tt Timetable) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.current = &tt
	return nil
}

func (r *repoMock) Current(_ context.Context) (Timetable, error) {
	if r.current == nil {
		return Timetable{}, ErrNotFound
	}
	return *r.current, nil
}

func newTestService(repo Repository) (*Service, *loggerMock) {
	logger := new(loggerMock)
	gen := NewGenerator(DefaultGrid(), rand.NewSource(5))
	return NewService(gen, repo, logger), logger
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMock)
	svc, logger := newTestService(repo)

	_, err := svc.Current(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))

	before := generatedCount.Value()
	tt, err := svc.Generate(ctx, NewTimetable{
		Teachers:        []string{"Ms. Lee", "Mr. Obi"},
		Subjects:        []string{"Math", "Art", "Music"},
		SubjectTeachers: []string{"Ms. Lee", "Ms Lee", "Dr. Kabongo"},
	})
	require.NoError(t, err)
	assert.Equal(t, before+1, generatedCount.Value())
	assert.Equal(t, DefaultGrid().Len(), tt.Len())

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, tt.ID, current.ID)

	assert.Equal(t, []string{"timetable generated"}, logger.levelMessages("info"))
	assert.Equal(t, []string{
		`teacher "Ms Lee" of subject "Art" not found, using "Unknown" (did you mean "Ms. Lee"?)`,
		`teacher "Dr. Kabongo" of subject "Music" not found, using "Unknown"`,
	}, logger.levelMessages("warn"))

	// regenerating replaces the stored timetable
	next, err := svc.Generate(ctx, NewTimetable{Subjects: []string{"History"}})
	require.NoError(t, err)
	current, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, next.ID, current.ID)
	assert.Equal(t, "History (Unknown)", current.Entries["Monday"]["09:00-10:00"])
}

func TestService_Generate_saveError(t *testing.T) {
	svc, _ := newTestService(&repoMock{saveErr: fmt.Errorf("disk full")})

	_, err := svc.Generate(context.Background(), NewTimetable{})
	assert.EqualError(t, err, "saving timetable: disk full")
}

func TestService_Grid(t *testing.T) {
	svc, _ := newTestService(&repoMock{})
	got := svc.Grid()
	got.Days[0] = "Sunday"
	got.Slots[0].Kind = Lunch
	assert.Equal(t, DefaultGrid(), svc.Grid())
}
