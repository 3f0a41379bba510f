package ports

// Logger defines the interface for logging. Debug output is discarded
// unless the adapter runs in verbose mode.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
