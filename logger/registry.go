package logger

import "sync"

// Named component loggers. Binaries seed the registry once the global logger
// is configured and hand out loggers by component name.
var (
	registryMu sync.RWMutex
	registered = map[string]*Logger{}
)

// Register stores l under name, replacing any earlier entry.
func Register(name string, l *Logger) {
	registryMu.Lock()
	registered[name] = l
	registryMu.Unlock()
}

// Get returns the logger registered under name. Unknown names fall back to
// the current global logger tagged with name as its component.
func Get(name string) *Logger {
	registryMu.RLock()
	l := registered[name]
	registryMu.RUnlock()
	if l != nil {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults registers a component logger derived from the global
// logger for each name. Call it after Init or SetGlobalLogger.
func RegisterDefaults(names ...string) {
	base := GetGlobalLogger()
	for _, name := range names {
		Register(name, base.WithComponent(name))
	}
}
