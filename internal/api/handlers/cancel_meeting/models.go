package cancel_meeting

// CancelMeetingRequest HTTP request model
type CancelMeetingRequest struct {
	UserID int64 `json:"userId"`
}
