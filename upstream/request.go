package upstream

import (
	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
	"github.com/tidwall/gjson"
)

// Request is one generation call: a model identifier and the payload that is
// forwarded to the upstream without being re-encoded.
type Request struct {
	Model   string
	Payload []byte
}

// ParseRequest reads a {"model": ..., "payload": ...} body.
func ParseRequest(body []byte) (Request, error) {
	if !gjson.ValidBytes(body) {
		return Request{}, apperrors.Wrapf(apperrors.ErrBadRequest, "body is not valid JSON")
	}

	model := gjson.GetBytes(body, "model")
	payload := gjson.GetBytes(body, "payload")
	if model.Type != gjson.String || model.Str == "" || !present(payload) {
		return Request{}, apperrors.ErrBadRequest
	}
	return Request{Model: model.Str, Payload: []byte(payload.Raw)}, nil
}

// present treats the JSON values false, null, 0 and "" as missing.
func present(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	default:
		return r.Exists()
	}
}
