package service

import (
	"time"

	"github.com/alexanderramin/physio/internal/domain"
)

// wallNow is the local wall clock in the neutral carrier used for storage.
var wallNow = func() time.Time {
	return domain.WallClock(time.Now())
}
