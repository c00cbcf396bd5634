package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_OK(t *testing.T) {
	ok := Response[string]{Code: 200, Msg: "success", Data: "hi"}
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())

	failed := Response[string]{Code: 500, Msg: "boom"}
	assert.False(t, failed.OK())

	err := failed.Err()
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Msg)
}

func TestResponse_DecodePolymorphicData(t *testing.T) {
	var profile GetProfileResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code":200,"msg":"ok","data":{"username":"alice","gender":2}}`), &profile))
	assert.Equal(t, "alice", profile.Data.Username)
	assert.Equal(t, 2, profile.Data.Gender)

	var count GetUnreadCountResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code":200,"msg":"ok","data":3}`), &count))
	assert.Equal(t, 3, count.Data)

	var avatar UploadAvatarResponse
	require.NoError(t, json.Unmarshal([]byte(`{"code":200,"msg":"ok","data":"/static/a.png"}`), &avatar))
	assert.Equal(t, "/static/a.png", avatar.Data)
}
