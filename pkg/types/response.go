package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// ServiceInfo is the metadata document served at the API root.
type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	ListURL string `json:"list_url"`
}
