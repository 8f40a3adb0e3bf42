package llm

import (
	"golang.org/x/sync/semaphore"
)

var (
	CorrectWeight = int64(5)
	CorrectSem    = semaphore.NewWeighted(CorrectWeight)
)
