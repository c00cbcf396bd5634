package api

// AddContactApplyRequest sends a contact request to another user
type AddContactApplyRequest struct {
	UserName string `json:"userName"` // username of the target user
}

// HandleApplyRequest approves or rejects a pending contact request
type HandleApplyRequest struct {
	ContactID int64 `json:"contactId"`
	Agree     bool  `json:"agree"`
}

// ContactApply represents one pending contact request
type ContactApply struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	Nickname   string `json:"nickname"`
	Status     string `json:"status"`
	CreateTime string `json:"createTime"`
}

type (
	AddContactApplyResponse = Response[*string]
	ListAppliesResponse     = Response[[]ContactApply]
	HandleApplyResponse     = Response[*string]
	// GetUnreadCountResponse carries the unread contact-request total
	GetUnreadCountResponse = Response[int]
	MarkAllReadResponse    = Response[any]
)
