package adapter

import "time"

// Clock supplies the current time in the application time zone.
type Clock interface {
	Now() time.Time
}
