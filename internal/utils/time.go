package utils

import "time"

// FormatDatestamp names output folders and snapshot labels: MMDDYY-HHMM.
func FormatDatestamp(t time.Time) string {
	return t.Format("010206-1504")
}
