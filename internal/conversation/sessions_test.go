package conversation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

func TestFirstContactDefaultsToMainMenu(t *testing.T) {
	m := NewManager()

	// Whatever the first event is, the user starts at the main menu.
	m.Do(99, func(state models.State, conv Context) (models.State, Context) {
		require.Equal(t, models.StateMainMenu, state)
		require.Empty(t, conv.SelectedCategory)
		return state, conv
	})

	require.Equal(t, models.StateMainMenu, m.StateOf(99))
}

func TestDoCommitsReturnedState(t *testing.T) {
	m := NewManager()

	m.Do(7, func(state models.State, conv Context) (models.State, Context) {
		conv.SelectedCategory = "Фото"
		return models.StateNeuralList, conv
	})

	require.Equal(t, models.StateNeuralList, m.StateOf(7))

	m.Do(7, func(state models.State, conv Context) (models.State, Context) {
		require.Equal(t, models.StateNeuralList, state)
		require.Equal(t, "Фото", conv.SelectedCategory)
		return state, conv
	})
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	m := NewManager()

	m.Do(1, func(models.State, Context) (models.State, Context) {
		return models.StateAskQuestion, Context{}
	})

	require.Equal(t, models.StateAskQuestion, m.StateOf(1))
	require.Equal(t, models.StateMainMenu, m.StateOf(2))
}

func TestPerUserSerialization(t *testing.T) {
	m := NewManager()

	// Two handlers for the same user must not overlap: the second sees
	// the state committed by the first.
	started := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Do(5, func(state models.State, conv Context) (models.State, Context) {
			close(started)
			time.Sleep(20 * time.Millisecond)
			return models.StateNeuralCategories, conv
		})
	}()

	<-started
	m.Do(5, func(state models.State, conv Context) (models.State, Context) {
		require.Equal(t, models.StateNeuralCategories, state)
		return state, conv
	})
	wg.Wait()
}

func TestDifferentUsersProceedConcurrently(t *testing.T) {
	m := NewManager()

	blocked := make(chan struct{})
	release := make(chan struct{})

	go m.Do(10, func(state models.State, conv Context) (models.State, Context) {
		close(blocked)
		<-release
		return state, conv
	})

	<-blocked

	// User 11 must not wait for user 10's handler.
	done := make(chan struct{})
	go func() {
		m.Do(11, func(state models.State, conv Context) (models.State, Context) {
			return state, conv
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second user blocked behind first user's session")
	}
	close(release)
}
