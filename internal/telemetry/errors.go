package telemetry

import "fmt"

// ErrorMissingEnvVariable error for missing environment variable.
type ErrorMissingEnvVariable struct {
	Vars []string
}

func (e *ErrorMissingEnvVariable) Error() string {
	return fmt.Sprintf("missing environment variable: %v", e.Vars)
}

// ErrorInvalidTraceParent is returned for a TRACEPARENT value that is not `version-traceid-spanid-flags`.
type ErrorInvalidTraceParent struct {
	Value string
}

func (e *ErrorInvalidTraceParent) Error() string {
	return "invalid TRACEPARENT value " + e.Value
}
