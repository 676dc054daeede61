package errors

import "errors"

var (
	// Usage errors 🕹️
	ErrNoCommand = errors.New("❌ no command given")

	// Configuration errors 🔧
	ErrConfigWrite          = errors.New("❌ config file write failed")
	ErrProfileLoad          = errors.New("❌ profile load failed")
	ErrInvalidLaunchOptions = errors.New("❌ invalid launch options")

	// Runner errors 🍷
	ErrRunnerScan = errors.New("❌ runner directory scan failed")

	// Launch errors 🚀
	ErrLaunchFailed    = errors.New("❌ launch failed")
	ErrExecUnsupported = errors.New("❌ process replacement not supported on this platform")
)
