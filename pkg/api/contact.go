package api

// Contact represents one entry of the signed-in user's contact list
type Contact struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Remark   string `json:"remark"` // display name override set by the owner
}

// UpdateContactRequest changes the remark of an existing contact
type UpdateContactRequest struct {
	ContactID int64  `json:"contactId"`
	Remark    string `json:"remark"`
}

type (
	ListContactsResponse  = Response[[]Contact]
	DeleteContactResponse = Response[string]
	UpdateContactResponse = Response[string]
)
