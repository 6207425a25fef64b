package response

import "time"

// CallbackAckMessage is the body every accepted callback gets, regardless of
// the internal outcome. The gateway retries on anything else.
const CallbackAckMessage = "Callback received successfully"

type CallbackAckResponse struct {
	Message string `json:"message"`
}

func NewCallbackAck() CallbackAckResponse {
	return CallbackAckResponse{Message: CallbackAckMessage}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func NewHealth(now time.Time) HealthResponse {
	return HealthResponse{
		Status:    "OK",
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
