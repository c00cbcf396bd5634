package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name         string
		identifyType string
		identifier   string
		wantErr      bool
	}{
		{name: "valid email", identifyType: "email", identifier: "a@b.com", wantErr: false},
		{name: "valid email with subdomain", identifyType: "email", identifier: "user@mail.example.org", wantErr: false},
		{name: "empty identifier", identifyType: "email", identifier: "", wantErr: true},
		{name: "missing at sign", identifyType: "email", identifier: "ab.com", wantErr: true},
		{name: "missing domain dot", identifyType: "email", identifier: "a@bcom", wantErr: true},
		{name: "whitespace", identifyType: "email", identifier: "a b@c.com", wantErr: true},
		{name: "unsupported type", identifyType: "phone", identifier: "12345678901", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.identifyType, tt.identifier)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVerifyCode(t *testing.T) {
	assert.NoError(t, ValidateVerifyCode("123456"))
	assert.Error(t, ValidateVerifyCode(""))
	assert.Error(t, ValidateVerifyCode("12345"))
	assert.Error(t, ValidateVerifyCode("1234567"))
	assert.Error(t, ValidateVerifyCode("12345a"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("1234567890123456"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword("12345678901234567"))
}
