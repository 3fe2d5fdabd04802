package model

const (
	//custom status assigned when submission to the gateway fails
	SEND_ERROR string = "send_error"

	//gateway delivery statuses
	QUEUED      = "queued"
	ACCEPTED    = "accepted"
	SENDING     = "sending"
	SENT        = "sent"
	DELIVERED   = "delivered"
	UNDELIVERED = "undelivered"
	FAILED      = "failed"
)

// Message is the handle returned by the gateway on submission.
// Sid identifies the message in subsequent status queries.
type Message struct {
	Sid    string
	Status string
}

// IsTerminal reports whether no further status changes are expected.
func IsTerminal(status string) bool {
	switch status {
	case DELIVERED, UNDELIVERED, FAILED:
		return true
	}
	return false
}
