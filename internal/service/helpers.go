package service

import (
	"errors"

	"github.com/alexanderramin/flatbook/internal/repository"
)

// isNotFound reports whether err marks an absent row rather than a
// collaborator failure.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
