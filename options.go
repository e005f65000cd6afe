package filament

// OptionsProxy is a read-only view over the options a command was invoked with.
//
// Missing keys resolve to the accessor's zero value instead of an error, mirroring the
// lookup-or-absent contract of the platform's option payloads. The underlying mapping is
// never mutated through the proxy.
type OptionsProxy struct {
	options map[string]any
}

// NewOptionsProxy returns an [OptionsProxy] wrapping the given option mapping.
//
// A nil mapping is valid and behaves as an empty one.
func NewOptionsProxy(options map[string]any) OptionsProxy {
	return OptionsProxy{options: options}
}

// Get retrieves the raw value of the named option.
//
// Returns:
//   - any: The option value, or nil when the option was not supplied.
func (op OptionsProxy) Get(name string) any {
	return op.options[name]
}

// Has reports whether the named option was supplied.
func (op OptionsProxy) Has(name string) bool {
	_, ok := op.options[name]
	return ok
}

// Len returns the number of supplied options.
func (op OptionsProxy) Len() int {
	return len(op.options)
}

// String retrieves the named option as a string, or "" when absent or of another type.
func (op OptionsProxy) String(name string) string {
	val, _ := op.options[name].(string)
	return val
}

// Int retrieves the named option as an int64, or 0 when absent or of another type.
//
// Integer options arrive from the wire as float64, so both representations are accepted.
func (op OptionsProxy) Int(name string) int64 {
	switch val := op.options[name].(type) {
	case int64:
		return val
	case float64:
		return int64(val)
	default:
		return 0
	}
}

// Float retrieves the named option as a float64, or 0 when absent or of another type.
func (op OptionsProxy) Float(name string) float64 {
	val, _ := op.options[name].(float64)
	return val
}

// Bool retrieves the named option as a bool, or false when absent or of another type.
func (op OptionsProxy) Bool(name string) bool {
	val, _ := op.options[name].(bool)
	return val
}
