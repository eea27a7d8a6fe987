package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/restoservice/repair-admin/internal/httperr"
)

// ErrInvalidCredentials is raised by AuthStore.Login; it is the one
// store failure callers are expected to handle themselves.
var ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
