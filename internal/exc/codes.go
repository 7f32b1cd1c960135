package exc

const (
	CodeUnknownFatal      = "K0000"
	CodeAbsentValue       = "K0001"
	CodeUnboxMismatch     = "K0002"
	CodeSchemaParseError  = "K0003"
	CodeDuplicateType     = "K0004"
	CodeUnsupportedSchema = "K0005"
	CodeSchemaWarning     = "K0006"
)

var (
	defaultNonFatal = map[string]bool{
		CodeSchemaWarning: true,
	}
)
