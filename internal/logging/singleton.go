package logging

import (
	"sync"
)

var (
	instance *Logger
	once     sync.Once
	mu       sync.RWMutex
)

// InitLogger initializes the singleton logger with the given configuration.
// Safe to call more than once; only the first call wins.
func InitLogger(config *Config) error {
	var initErr error
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		logger, err := NewLogger(config)
		if err != nil {
			initErr = err
			return
		}
		instance = logger
	})
	return initErr
}

// GetLogger returns the singleton logger instance.
// If InitLogger was never called, it falls back to a logger writing to ./logs/api.log.
func GetLogger() *Logger {
	mu.RLock()
	l := instance
	mu.RUnlock()
	if l != nil {
		return l
	}

	if err := InitLogger(&Config{
		Level:      "info",
		File:       "./logs/api.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return instance
}
