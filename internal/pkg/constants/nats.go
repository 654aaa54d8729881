package constants

// NATS Subjects
const (
	// User events
	SubjectUserRegistered = "user.registered"
	SubjectUserVerified   = "user.verified"

	// Post events
	SubjectPostCreated = "post.created"
)
