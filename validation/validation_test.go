package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"blog-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	cleaned, err := ValidateUser(models.CreateUserRequest{Username: "Petya"})
	require.NoError(t, err)
	assert.Equal(t, "Petya", cleaned.Username)

	_, err = ValidateUser(models.CreateUserRequest{})
	assert.EqualError(t, err, "`username` is required")

	for _, username := range []string{"pet ya", "petya!", "пётр", "a-b"} {
		_, err = ValidateUser(models.CreateUserRequest{Username: username})
		assert.IsType(t, models.ErrorValidation{}, err, "username %q", username)
	}
}

func TestValidatePost(t *testing.T) {
	cleaned, err := ValidatePost(models.CreatePostRequest{
		Title: "First",
		Body:  "hello",
		Tags:  []interface{}{"go", "web"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, cleaned.Tags)

	// tags are optional
	cleaned, err = ValidatePost(models.CreatePostRequest{Title: "First", Body: "hello"})
	require.NoError(t, err)
	assert.Empty(t, cleaned.Tags)

	_, err = ValidatePost(models.CreatePostRequest{Title: "First"})
	assert.EqualError(t, err, "Fields `title` and `body` are required")

	_, err = ValidatePost(models.CreatePostRequest{Title: "First", Body: "hello", Tags: "go"})
	assert.EqualError(t, err, "Field `tags` is invalid")

	_, err = ValidatePost(models.CreatePostRequest{
		Title: "First",
		Body:  "hello",
		Tags:  []interface{}{"ok", "no tag"},
	})
	assert.EqualError(t, err, "Field `tags` is invalid")
}

func TestValidatePostDedupsTagNames(t *testing.T) {
	cleaned, err := ValidatePost(models.CreatePostRequest{
		Title: "t",
		Body:  "b",
		Tags:  []interface{}{"go", "go", "web"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, cleaned.Tags)
}

func TestValidatePostTooManyTags(t *testing.T) {
	tags := make([]interface{}, 11)
	for i := range tags {
		tags[i] = "tag" + string(rune('a'+i))
	}
	_, err := ValidatePost(models.CreatePostRequest{Title: "t", Body: "b", Tags: tags})
	assert.EqualError(t, err, "Field `tags` is invalid. Max length is 10")
}

func TestValidateComment(t *testing.T) {
	cleaned, err := ValidateComment(models.CreateCommentRequest{Body: "hi", UserID: float64(3)})
	require.NoError(t, err)
	assert.Equal(t, uint(3), cleaned.UserID)

	// user_id arrives as a string in some clients
	cleaned, err = ValidateComment(models.CreateCommentRequest{Body: "hi", UserID: "7"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), cleaned.UserID)

	cleaned, err = ValidateComment(models.CreateCommentRequest{Body: "hi", UserID: json.Number("9")})
	require.NoError(t, err)
	assert.Equal(t, uint(9), cleaned.UserID)

	_, err = ValidateComment(models.CreateCommentRequest{UserID: float64(3)})
	assert.EqualError(t, err, "Field `body` is required")

	_, err = ValidateComment(models.CreateCommentRequest{Body: "hi"})
	assert.EqualError(t, err, "Field `user_id` is required")

	_, err = ValidateComment(models.CreateCommentRequest{Body: "hi", UserID: "seven"})
	assert.EqualError(t, err, "Bad field `user_id`")

	_, err = ValidateComment(models.CreateCommentRequest{Body: "hi", UserID: float64(2.5)})
	assert.EqualError(t, err, "Bad field `user_id`")
}

func TestValidateCommentBodyTooLong(t *testing.T) {
	body := make([]byte, 10001)
	for i := range body {
		body[i] = 'x'
	}
	_, err := ValidateComment(models.CreateCommentRequest{Body: string(body), UserID: float64(1)})
	assert.EqualError(t, err, "Field `body` is too long. Max length is 10000")

	_, err = ValidateComment(models.CreateCommentRequest{Body: string(body[:10000]), UserID: float64(1)})
	assert.NoError(t, err)

	// the limit counts characters, not bytes: 10000 two-byte runes pass
	cyrillic := strings.Repeat("ё", 10000)
	_, err = ValidateComment(models.CreateCommentRequest{Body: cyrillic, UserID: float64(1)})
	assert.NoError(t, err)

	_, err = ValidateComment(models.CreateCommentRequest{Body: cyrillic + "ё", UserID: float64(1)})
	assert.EqualError(t, err, "Field `body` is too long. Max length is 10000")
}

func TestValidateBan(t *testing.T) {
	cleaned, err := ValidateBan(models.CreateBanRequest{UserID: float64(4)})
	require.NoError(t, err)
	assert.Equal(t, uint(4), cleaned.UserID)

	_, err = ValidateBan(models.CreateBanRequest{})
	assert.EqualError(t, err, "Field `user_id` is required")

	_, err = ValidateBan(models.CreateBanRequest{UserID: true})
	assert.EqualError(t, err, "Bad field `user_id`")
}

func TestAlphanumeric(t *testing.T) {
	assert.True(t, Alphanumeric("abc123"))
	assert.True(t, Alphanumeric("ABC"))
	assert.False(t, Alphanumeric(""))
	assert.False(t, Alphanumeric("abc-123"))
	assert.False(t, Alphanumeric("tag name"))
}
