package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrTeamExists - команда уже существует
	ErrTeamExists = &DomainError{
		Code:    "TEAM_EXISTS",
		Message: "team_name already exists",
	}

	// ErrPRExists - PR уже существует
	ErrPRExists = &DomainError{
		Code:    "PR_EXISTS",
		Message: "PR id already exists",
	}

	// ErrCannotReassign - нарушение правил переназначения:
	// PR уже MERGED, ревьювер не назначен на PR или нет доступных кандидатов
	ErrCannotReassign = &DomainError{
		Code:    "CANNOT_REASSIGN",
		Message: "cannot reassign reviewer on this PR",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewCannotReassignError создает ошибку CANNOT_REASSIGN с уточненной причиной.
// Код остается общим, поэтому errors.Is(err, ErrCannotReassign) покрывает
// все три случая
func NewCannotReassignError(reason string) *DomainError {
	return &DomainError{
		Code:    "CANNOT_REASSIGN",
		Message: reason,
	}
}
