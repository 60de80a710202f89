package models

// Status is the phase of the weather request.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrorReason tells why a request failed.
type ErrorReason string

const (
	CityNotFound ErrorReason = "city_not_found"
	NetworkError ErrorReason = "network_error"
)

const (
	CityNotFoundMessage = "City not found. Please check the spelling and try again."
	NetworkErrorMessage = "Failed to fetch weather data. Please check your internet connection."
)

// Message is the text shown to the user for the reason.
func (r ErrorReason) Message() string {
	switch r {
	case CityNotFound:
		return CityNotFoundMessage
	case NetworkError:
		return NetworkErrorMessage
	}
	return ""
}

// RequestState is one of Idle, Loading, Succeeded or Failed. Build it with
// the constructors below: only Succeeded carries a snapshot and only Failed
// carries a reason.
type RequestState struct {
	Status   Status           `json:"status" example:"succeeded"`
	Snapshot *WeatherSnapshot `json:"snapshot,omitempty"`
	Reason   ErrorReason      `json:"reason,omitempty" example:"city_not_found"`
}

func Idle() RequestState {
	return RequestState{Status: StatusIdle}
}

func Loading() RequestState {
	return RequestState{Status: StatusLoading}
}

func Succeeded(snapshot WeatherSnapshot) RequestState {
	return RequestState{Status: StatusSucceeded, Snapshot: &snapshot}
}

func Failed(reason ErrorReason) RequestState {
	return RequestState{Status: StatusFailed, Reason: reason}
}

func (r RequestState) IsLoading() bool {
	return r.Status == StatusLoading
}

// Message is the user-facing error text, empty unless the request failed.
func (r RequestState) Message() string {
	if r.Status != StatusFailed {
		return ""
	}
	return r.Reason.Message()
}
