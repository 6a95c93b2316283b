package telemetry

// Options selects the exporters. Every field is bound to a TT_TELEMETRY_* environment variable.
type Options struct {
	TraceExporter                 string
	TraceExporterHTTPEndpoint     string
	TraceParent                   string
	TraceExporterInsecureEndpoint bool

	MetricExporter                 string
	MetricExporterInsecureEndpoint bool
}
