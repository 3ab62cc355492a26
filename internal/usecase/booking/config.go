package booking

import "time"

type Config struct {
	// LockTTL bounds how long a crashed holder can keep a slot locked.
	LockTTL time.Duration

	// RequireApprovedSalon rejects bookings for salons that are not approved.
	RequireApprovedSalon bool

	// PageSize is the listing batch size.
	PageSize int
}

func (c Config) pageSize() int {
	if c.PageSize <= 0 {
		return 100
	}
	return c.PageSize
}
