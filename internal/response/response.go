// Package response defines the JSON envelope every endpoint returns:
// { success, data } on success, { success, message } on failure.
package response

// Envelope is the uniform API response body
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK wraps a payload in a successful envelope
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Message wraps a human-readable success message
func Message(msg string) Envelope {
	return Envelope{Success: true, Message: msg}
}

// Fail wraps a client-visible error message
func Fail(msg string) Envelope {
	return Envelope{Success: false, Message: msg}
}
