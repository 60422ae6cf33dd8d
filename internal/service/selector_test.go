package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

func makeUsers(ids ...string) []*domain.User {
	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, &domain.User{ID: id, IsActive: true})
	}
	return users
}

func TestSampleWithoutReplacement_Size(t *testing.T) {
	t.Run("кандидатов больше, чем нужно", func(t *testing.T) {
		selected, err := SampleWithoutReplacement(makeUsers("u1", "u2", "u3", "u4"), 2)
		require.NoError(t, err)
		assert.Len(t, selected, 2)
	})

	t.Run("кандидатов меньше, чем нужно - возвращаются все", func(t *testing.T) {
		selected, err := SampleWithoutReplacement(makeUsers("u1"), 2)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, "u1", selected[0].ID)
	})

	t.Run("пустой пул - не ошибка", func(t *testing.T) {
		selected, err := SampleWithoutReplacement(nil, 2)
		require.NoError(t, err)
		assert.Empty(t, selected)
	})

	t.Run("n <= 0 - пустой результат", func(t *testing.T) {
		selected, err := SampleWithoutReplacement(makeUsers("u1", "u2"), 0)
		require.NoError(t, err)
		assert.Empty(t, selected)
	})
}

func TestSampleWithoutReplacement_NoDuplicates(t *testing.T) {
	for i := 0; i < 100; i++ {
		selected, err := SampleWithoutReplacement(makeUsers("u1", "u2", "u3"), 2)
		require.NoError(t, err)
		require.Len(t, selected, 2)
		assert.NotEqual(t, selected[0].ID, selected[1].ID)
	}
}

func TestSampleWithoutReplacement_InputPreserved(t *testing.T) {
	candidates := makeUsers("u1", "u2", "u3", "u4")

	_, err := SampleWithoutReplacement(candidates, 2)
	require.NoError(t, err)

	require.Len(t, candidates, 4)
	for i, id := range []string{"u1", "u2", "u3", "u4"} {
		assert.Equal(t, id, candidates[i].ID)
	}
}

// Статистическая проверка равномерности: на большом числе прогонов каждый
// кандидат должен выбираться примерно одинаково часто. Допуск широкий,
// чтобы тест не флапал
func TestSampleWithoutReplacement_Uniformity(t *testing.T) {
	const trials = 6000
	candidates := makeUsers("u1", "u2", "u3")

	counts := make(map[string]int, len(candidates))
	for i := 0; i < trials; i++ {
		selected, err := SampleWithoutReplacement(candidates, 1)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		counts[selected[0].ID]++
	}

	expected := trials / len(candidates)
	for id, count := range counts {
		assert.InDelta(t, expected, count, float64(expected)*0.25,
			"кандидат %s выбран %d раз при ожидаемых ~%d", id, count, expected)
	}
}
