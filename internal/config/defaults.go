package config

// Core configuration keys.
const (
	KeyTodoFile   = "todo.file"
	KeyTodoFormat = "todo.format"
	KeyListAll    = "list.all"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyColor      = "color"
)

// DefaultTodoFile is where the list lives unless configured otherwise.
const DefaultTodoFile = "~/.todo"

// DefaultValues returns the default config map for the core keys.
func DefaultValues() map[string]string {
	return map[string]string{
		KeyTodoFile:   DefaultTodoFile,
		KeyTodoFormat: "auto",
		KeyListAll:    "false",
		KeyLogLevel:   "warn",
		KeyLogFormat:  "text",
		KeyColor:      "auto",
	}
}

// ApplyDefaults fills missing core keys in memory. Nothing is written to disk.
func ApplyDefaults(s Store) {
	all := s.All()
	for k, v := range DefaultValues() {
		if _, exists := all[k]; !exists {
			s.SetInMemory(k, v)
		}
	}
}
