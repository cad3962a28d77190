package usage

import "time"

const resetWindow = 30 * 24 * time.Hour

func defaultUsage() Usage {
	return Usage{
		Plan:     "Free",
		Limit:    5,
		Used:     0,
		ResetsAt: time.Now().UTC().Add(resetWindow),
	}
}
