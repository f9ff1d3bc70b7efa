package model

type PostDetailed struct {
	*Post
	Author *User  `json:"author"`
	Group  *Group `json:"group,omitempty"`
}
