package noisehash

import "sync"

// Process-wide generator used by the package-level functions.
var (
	globalMu  sync.Mutex
	globalGen = Generator{state: DefaultSeed}
)

// SetSeed reseeds the process-wide generator.
func SetSeed(seed uint32) {
	globalMu.Lock()
	globalGen.SetSeed(seed)
	globalMu.Unlock()
}

// Next draws from the process-wide generator.
//
// The package-level functions are safe for concurrent use, but a
// reproducible sequence still requires a single caller between SetSeed and
// the draws. Code that needs that guarantee should own a Generator.
func Next() uint32 {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalGen.Next()
}

// NextFloat draws from the process-wide generator scaled into [min, max].
func NextFloat(min, max float32) float32 {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalGen.NextFloat(min, max)
}
