package logger

// Logger is the component-oriented logging surface used across the application.
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Nop discards everything. Useful in tests and for commands that print to stdout.
type Nop struct{}

func (Nop) Info(string, string, map[string]interface{}) {}
func (Nop) Warning(string, string, map[string]interface{}) {}
func (Nop) Debug(string, string, map[string]interface{}) {}
func (Nop) Error(string, error, map[string]interface{}) {}
