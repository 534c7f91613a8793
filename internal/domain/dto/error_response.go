package dto

import "time"

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Message      string    `json:"message" example:"insufficient data for analysis"`
	ErrorDetails string    `json:"error_details,omitempty" example:"need at least 50 bars, got 12"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-12T21:00:00Z"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse stamps msg with the current time. err, when non-nil,
// becomes the details field.
func NewErrorResponse(msg string, err error) ErrorResponse {
	resp := ErrorResponse{Message: msg, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
