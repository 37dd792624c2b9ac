package pixel

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var loggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	SetLogger(zerolog.Nop())
}

// SetLogger sets the logger used by the package. By default nothing
// is logged. Converter resolution is logged at debug level; the
// conversion loops themselves never log.
func SetLogger(l zerolog.Logger) {
	loggerPtr.Store(&l)
}

// Logger returns the logger currently in use by the package.
func Logger() *zerolog.Logger {
	return loggerPtr.Load()
}
