// internal/output/formats.go
package output

// Output formats shared by every command.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatMsgpack = "msgpack"
)

// Formats lists the accepted values of --output, in help order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatMsgpack}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}
