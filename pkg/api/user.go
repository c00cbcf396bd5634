package api

// Profile represents the signed-in user's profile
type Profile struct {
	Username      string `json:"username"`
	Nickname      string `json:"nickname"`
	Avatar        string `json:"avatar"` // URL of the avatar image
	Gender        int    `json:"gender"`
	Bio           string `json:"bio"`
	CreateTime    string `json:"createTime"`
	UpdateTime    string `json:"updateTime"`
	LastLoginTime string `json:"lastLoginTime"`
}

// UpdateProfileRequest carries the user-editable profile fields
type UpdateProfileRequest struct {
	Nickname string `json:"nickname"`
	Gender   int    `json:"gender"`
	Bio      string `json:"bio"`
}

type (
	GetProfileResponse    = Response[Profile]
	UpdateProfileResponse = Response[any]
	// UploadAvatarResponse carries the URL of the stored avatar as its data
	UploadAvatarResponse = Response[string]
)
