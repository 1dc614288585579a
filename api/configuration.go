package api

import "time"

type Configuration struct {
	Env     string
	AppName string
	Port    string

	RequestTimeout time.Duration
	BatchTimeout   time.Duration

	// MaxBatchSize bounds one POST /research/batch call; bigger lists belong
	// in the CLI batch mode.
	MaxBatchSize int
}
