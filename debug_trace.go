package noisehash

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// debugEnabled controls whether debug tracing is enabled via NOISEHASH_DEBUG env var
var debugEnabled = os.Getenv("NOISEHASH_DEBUG") == "1"

var traceLogger = zerolog.New(os.Stderr).With().Timestamp().Str("context", "noisehash").Logger()

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		traceLogger.Debug().Msgf(format, args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name
func traceBytes(name string, data []byte) {
	if debugEnabled {
		traceLogger.Debug().
			Int("len", len(data)).
			Str("hex", hex.EncodeToString(data)).
			Msg(name)
	}
}

// traceWord outputs a single 32-bit word
func traceWord(name string, value uint32) {
	if debugEnabled {
		traceLogger.Debug().Str("value", fmt.Sprintf("0x%08x", value)).Uint32("dec", value).Msg(name)
	}
}
