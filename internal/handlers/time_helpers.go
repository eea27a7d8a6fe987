package handlers

import (
	"time"

	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/timezone"
)

// parseDateInBranch interprets a YYYY-MM-DD string as midnight in the
// branch's timezone.
func parseDateInBranch(branch *models.Branch, date string) (time.Time, error) {
	loc := timezone.Location(branch.Timezone)
	return time.ParseInLocation("2006-01-02", date, loc)
}
