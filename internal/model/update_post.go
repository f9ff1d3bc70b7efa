package model

// UpdatePostDTO carries the only mutable post fields. Author and pub_date
// are fixed at creation and never travel through an update.
//
// A nil Text leaves the text unchanged. GroupID is applied verbatim: the
// edit form always submits the full group selection, so nil detaches the
// post from its group.
type UpdatePostDTO struct {
	Text    *string `json:"text,omitempty"`
	GroupID *int64  `json:"group_id,omitempty"`
}
