package job

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, results Results) (map[string]any, error) {
	return nil, nil
}

func TestNew(t *testing.T) {
	j := New()
	require.NotNil(t, j)
	assert.Zero(t, j.Len())
}

func TestAddTask(t *testing.T) {
	t.Run("registers tasks and edges", func(t *testing.T) {
		j := New()
		require.NoError(t, j.AddTask(Task{ID: "a", Run: noop}))
		require.NoError(t, j.AddTask(Task{ID: "b", Run: noop}, "a"))
		require.NoError(t, j.AddTask(Task{ID: "c", Run: noop}, "a", "b", "a")) // duplicate prereq collapses
		assert.Equal(t, 3, j.Len())
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		j := New()
		require.NoError(t, j.AddTask(Task{ID: "a", Run: noop}))
		err := j.AddTask(Task{ID: "a", Run: noop})
		assert.ErrorIs(t, err, ErrDuplicateTask)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		j := New()
		assert.Error(t, j.AddTask(Task{Run: noop}))
	})

	t.Run("rejects unknown prerequisite", func(t *testing.T) {
		j := New()
		err := j.AddTask(Task{ID: "b", Run: noop}, "a")
		assert.ErrorIs(t, err, ErrUnknownPrerequisite)
		assert.Zero(t, j.Len())
	})
}

func TestAddEdge(t *testing.T) {
	j := New()
	require.NoError(t, j.AddTask(Task{ID: "a", Run: noop}))
	require.NoError(t, j.AddTask(Task{ID: "b", Run: noop}))

	require.NoError(t, j.AddEdge("b", "a"))

	assert.ErrorIs(t, j.AddEdge("b", "dne"), ErrUnknownPrerequisite)
	assert.ErrorIs(t, j.AddEdge("dne", "a"), ErrUnknownPrerequisite)
	assert.ErrorIs(t, j.AddEdge("a", "a"), ErrCycle)
}

func TestExecuteOrdering(t *testing.T) {
	j := New()
	var ran []string
	record := func(id string) RunFunc {
		return func(ctx context.Context, results Results) (map[string]any, error) {
			ran = append(ran, id)
			return map[string]any{"id": id}, nil
		}
	}

	// Register dependents before an extra edge flips their order.
	require.NoError(t, j.AddTask(Task{ID: "root", Run: record("root")}))
	require.NoError(t, j.AddTask(Task{ID: "mid", Run: record("mid")}, "root"))
	require.NoError(t, j.AddTask(Task{ID: "leaf", Run: record("leaf")}, "mid"))
	require.NoError(t, j.AddTask(Task{ID: "side", Run: record("side")}, "root"))

	results, err := j.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 4)

	index := make(map[string]int, len(ran))
	for i, id := range ran {
		index[id] = i
	}
	assert.Less(t, index["root"], index["mid"])
	assert.Less(t, index["mid"], index["leaf"])
	assert.Less(t, index["root"], index["side"])
}

func TestExecuteResultsVisibility(t *testing.T) {
	j := New()
	require.NoError(t, j.AddTask(Task{ID: "producer", Run: func(ctx context.Context, results Results) (map[string]any, error) {
		return map[string]any{"answer": 42}, nil
	}}))

	var observed any
	require.NoError(t, j.AddTask(Task{ID: "consumer", Run: func(ctx context.Context, results Results) (map[string]any, error) {
		observed = results["producer"].Data["answer"]
		return nil, nil
	}}, "producer"))

	results, err := j.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, observed)
	assert.Equal(t, Success, results["consumer"].Status)
	assert.NotNil(t, results["consumer"].Data)
}

func TestExecuteFailSoft(t *testing.T) {
	j := New()
	boom := errors.New("boom")
	var siblingsRan int

	require.NoError(t, j.AddTask(Task{ID: "root", Run: noop}))
	require.NoError(t, j.AddTask(Task{ID: "bad", Run: func(ctx context.Context, results Results) (map[string]any, error) {
		return nil, boom
	}}, "root"))
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("sibling-%d", i)
		require.NoError(t, j.AddTask(Task{ID: id, Run: func(ctx context.Context, results Results) (map[string]any, error) {
			siblingsRan++
			return nil, nil
		}}, "root"))
	}

	results, err := j.Execute(context.Background())
	require.NoError(t, err)

	// One entry per registered task, failures included.
	assert.Len(t, results, 5)
	assert.Equal(t, 3, siblingsRan)
	assert.Equal(t, Failed, results["bad"].Status)
	assert.ErrorIs(t, results["bad"].Err, boom)
	assert.NotNil(t, results["bad"].Data)
}

func TestExecuteRecoversPanic(t *testing.T) {
	j := New()
	require.NoError(t, j.AddTask(Task{ID: "panicky", Run: func(ctx context.Context, results Results) (map[string]any, error) {
		panic("ouch")
	}}))
	require.NoError(t, j.AddTask(Task{ID: "after", Run: noop}))

	results, err := j.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Failed, results["panicky"].Status)
	assert.ErrorContains(t, results["panicky"].Err, "panicked")
	assert.Equal(t, Success, results["after"].Status)
}

func TestExecuteSkip(t *testing.T) {
	j := New()
	require.NoError(t, j.AddTask(Task{ID: "unbound", Run: func(ctx context.Context, results Results) (map[string]any, error) {
		return nil, Skip("nothing configured")
	}}))

	results, err := j.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Skipped, results["unbound"].Status)
	assert.Equal(t, "nothing configured", results["unbound"].Reason)
	assert.NoError(t, results["unbound"].Err)
}

func TestExecuteRejectsCycle(t *testing.T) {
	j := New()
	var ran int
	count := func(ctx context.Context, results Results) (map[string]any, error) {
		ran++
		return nil, nil
	}
	require.NoError(t, j.AddTask(Task{ID: "a", Run: count}))
	require.NoError(t, j.AddTask(Task{ID: "b", Run: count}, "a"))
	require.NoError(t, j.AddEdge("a", "b"))

	results, err := j.Execute(context.Background())
	assert.ErrorIs(t, err, ErrCycle)
	assert.Nil(t, results)
	assert.Zero(t, ran, "no task body may run when the topology is malformed")
}

func TestExecuteTwiceRerunsAllTasks(t *testing.T) {
	j := New()
	var ran int
	require.NoError(t, j.AddTask(Task{ID: "a", Run: func(ctx context.Context, results Results) (map[string]any, error) {
		ran++
		return nil, nil
	}}))

	_, err := j.Execute(context.Background())
	require.NoError(t, err)
	_, err = j.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, ran)
}
