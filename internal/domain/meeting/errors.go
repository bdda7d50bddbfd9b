package meeting

import "errors"

var (
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrOwnMeetingAccept  = errors.New("admins cannot accept their own meetings")
	ErrAlreadyAccepted   = errors.New("meeting already accepted")
	ErrNotMeetingCreator = errors.New("only the meeting creator can delete it")
)
