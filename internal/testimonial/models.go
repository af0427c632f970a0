package testimonial

import "time"

// Testimonial is one guestbook entry. Documents are immutable once written;
// the only mutation path is full deletion through the moderation endpoint.
type Testimonial struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Relationship string    `json:"relationship" bson:"relationship"`
	Message      string    `json:"message" bson:"message"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	// Approved is set true on every insert and no read path filters on it.
	// Kept so already-stored documents stay valid if manual moderation is
	// ever gated on it.
	Approved bool `json:"approved" bson:"approved"`
}

// Submission is the raw form input as received from the visitor, before
// validation and trimming.
type Submission struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Message      string `json:"message"`
	Email        string `json:"email"`
}
