package logging

// Component values for the "component" log attribute.
const (
	ComponentStartup  = "startup"
	ComponentConvert  = "convert"
	ComponentPipeline = "pipeline"
	ComponentRaw      = "raw"
	ComponentEncode   = "encode"
)
