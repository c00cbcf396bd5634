package api

// Verification code purposes, sent as VerifyCodeRequest.Type
const (
	VerifyCodeTypeRegister = 1
	VerifyCodeTypeLogin    = 2
	VerifyCodeTypeReset    = 3
)

// VerifyCodeRequest represents a request for a verification code
type VerifyCodeRequest struct {
	Type         int    `json:"type"`         // purpose of the code (register/login/reset)
	IdentifyType string `json:"identifyType"` // identifier kind, e.g. "email"
	Identifier   string `json:"identifier"`   // the identifier itself
}

// LoginRequest represents an authentication request
type LoginRequest struct {
	IdentifyType string `json:"identifyType"`
	Identifier   string `json:"identifier"`
	VerifyCode   string `json:"verifyCode"`
}

// LoginData is the payload of a successful login envelope
type LoginData struct {
	Token     string  `json:"token"`     // opaque bearer token
	TokenType string  `json:"tokenType"` // e.g. "Bearer"
	ExpiresIn int64   `json:"expiresIn"` // token lifetime in seconds
	Profile   Profile `json:"profile"`   // profile of the signed-in user
}

// RegisterRequest represents an account creation request
type RegisterRequest struct {
	IdentifyType string `json:"identifyType"`
	Identifier   string `json:"identifier"`
	VerifyCode   string `json:"verifyCode"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	IdentifyType string `json:"identifyType"`
	Identifier   string `json:"identifier"`
	VerifyCode   string `json:"verifyCode"`
	Password     string `json:"password"`
}

// Per-endpoint envelope instantiations
type (
	SendVerifyCodeResponse = Response[any]
	LoginResponse          = Response[LoginData]
	RegisterResponse       = Response[any]
	ResetPasswordResponse  = Response[any]
)
