package dto

// Envelope is the uniform success response wrapper.
type Envelope struct {
	Status string `json:"status"`
	Msg    string `json:"msg,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ListEnvelope wraps list responses with their item count.
type ListEnvelope struct {
	Status string `json:"status"`
	Length int    `json:"length"`
	Data   any    `json:"data"`
}
