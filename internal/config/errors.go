package config

import "errors"

var (
	ErrInvalidShutdownTimeout = errors.New("SHUTDOWN_TIMEOUT_SECONDS must be a positive integer")
	ErrInvalidSamplingRate    = errors.New("OTEL_SAMPLING_RATE must be a number between 0 and 1")
	ErrPortMissing            = errors.New("PORT must not be empty")

	ErrInvalidOfficeMinutes  = errors.New("required total office minutes must be positive")
	ErrInvalidWorkMinutes    = errors.New("required work minutes must be positive and within total office minutes")
	ErrInvalidBreakMinutes   = errors.New("designated break minutes must not be negative")
	ErrInvertedArrivalWindow = errors.New("latest arrival must not precede earliest arrival")
)
