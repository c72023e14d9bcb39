package upstream

// DefaultModel is used for any model identifier the gateway does not know.
const DefaultModel = "gemini-2.5-flash"

var modelEndpoints = map[string]string{
	"flash-lite": "gemini-2.5-flash-lite",
	"flash":      "gemini-2.5-flash",
	"pro":        "gemini-2.5-pro",
}

// ResolveModel maps a client model identifier onto an upstream model name.
// Unknown identifiers fall back to DefaultModel and report known=false.
func ResolveModel(id string) (name string, known bool) {
	if name, ok := modelEndpoints[id]; ok {
		return name, true
	}
	return DefaultModel, false
}
