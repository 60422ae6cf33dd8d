package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

// SampleWithoutReplacement выбирает min(len(candidates), n) кандидатов
// равновероятно и без повторов. Используется криптографический источник
// случайности: честность распределения назначений - продуктовое требование,
// предсказуемый PRNG здесь не годится.
//
// Пустой список кандидатов - не ошибка, результат будет пустым.
// Входной срез не модифицируется, порядок результата не специфицирован
func SampleWithoutReplacement(candidates []*domain.User, n int) ([]*domain.User, error) {
	if n <= 0 || len(candidates) == 0 {
		return []*domain.User{}, nil
	}

	count := n
	if count > len(candidates) {
		count = len(candidates)
	}

	pool := make([]*domain.User, len(candidates))
	copy(pool, candidates)

	selected := make([]*domain.User, 0, count)
	for i := 0; i < count; i++ {
		idx, err := randIndex(len(pool))
		if err != nil {
			return nil, err
		}
		selected = append(selected, pool[idx])
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}

	return selected, nil
}

func randIndex(n int) (int, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random index: %w", err)
	}
	return int(idx.Int64()), nil
}
