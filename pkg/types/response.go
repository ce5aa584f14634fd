package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// ItemsEnvelope is the collection body used by the alignments routes.
type ItemsEnvelope[T any] struct {
	Items []T `json:"items"`
}

// MessageErrorEnvelope is the flat error body used by the alignments routes.
type MessageErrorEnvelope struct {
	Error string `json:"error"`
}
