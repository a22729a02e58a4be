package entities

// Review is a user-authored rating and comment on a clinic. Rating is in
// [1,5]. Replies are a single-level thread, never nested further.
type Review struct {
	ID           string    `json:"id"`
	VeterinaryID string    `json:"veterinaryId"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    string    `json:"createdAt,omitempty"`
	UpdatedAt    string    `json:"updatedAt,omitempty"`
	Comments     []Comment `json:"comments,omitempty"`
}

// Comment is a clinic or other-user reply to a review
type Comment struct {
	ID        string `json:"id"`
	ReviewID  string `json:"reviewId"`
	UserID    string `json:"userId"`
	UserType  string `json:"userType"`
	UserName  string `json:"userName"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ReviewDocument is the shape of the mock reviews endpoint
type ReviewDocument struct {
	Reviews []Review `json:"reviews"`
}
