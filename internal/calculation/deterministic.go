package calculation

import "time"

// nowFunc supplies the current date for a new calculator's default start month.
var nowFunc = time.Now

// SetNowFunc overrides the current-date source and returns a func restoring the
// previous one. Intended for tests; passing nil restores time.Now.
func SetNowFunc(f func() time.Time) (restore func()) {
	prev := nowFunc
	if f == nil {
		f = time.Now
	}
	nowFunc = f
	return func() { nowFunc = prev }
}
