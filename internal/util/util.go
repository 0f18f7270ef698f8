package util

import "time"

// StampLayout is the timestamp format written to captions and registry rows.
const StampLayout = "02-01-2006 15:04"

func NowStamp() string {
	return time.Now().Format(StampLayout)
}
