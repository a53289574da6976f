// Package validation turns raw request payloads into cleaned, strongly typed
// ones. Functions here are pure: no datastore lookups, existence checks live
// in the service layer.
package validation

import (
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"blog-api/models"
)

const (
	maxTagsPerPost   = 10
	maxCommentLength = 10000
)

type UserPayload struct {
	Username string
}

type PostPayload struct {
	Title string
	Body  string
	Tags  []string
}

type CommentPayload struct {
	Body   string
	UserID uint
}

type BanPayload struct {
	UserID uint
}

// Alphanumeric reports whether s is non-empty and contains only [A-Za-z0-9].
func Alphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func ValidateUser(raw models.CreateUserRequest) (*UserPayload, error) {
	if raw.Username == "" {
		return nil, models.NewValidationError("`username` is required")
	}
	if !Alphanumeric(raw.Username) {
		return nil, models.NewValidationError("Field `username` is invalid")
	}
	return &UserPayload{Username: raw.Username}, nil
}

func ValidatePost(raw models.CreatePostRequest) (*PostPayload, error) {
	if raw.Title == "" || raw.Body == "" {
		return nil, models.NewValidationError("Fields `title` and `body` are required")
	}

	var tags []string
	if raw.Tags != nil {
		list, ok := raw.Tags.([]interface{})
		if !ok {
			return nil, models.NewValidationError("Field `tags` is invalid")
		}
		if len(list) > maxTagsPerPost {
			return nil, models.NewValidationError("Field `tags` is invalid. Max length is 10")
		}
		// Tags form a set: a repeated name counts once.
		seen := make(map[string]bool, len(list))
		for _, item := range list {
			name, ok := item.(string)
			if !ok || !Alphanumeric(name) {
				return nil, models.NewValidationError("Field `tags` is invalid")
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			tags = append(tags, name)
		}
	}

	return &PostPayload{Title: raw.Title, Body: raw.Body, Tags: tags}, nil
}

func ValidateComment(raw models.CreateCommentRequest) (*CommentPayload, error) {
	if raw.Body == "" {
		return nil, models.NewValidationError("Field `body` is required")
	}
	// The limit counts characters, not bytes.
	if utf8.RuneCountInString(raw.Body) > maxCommentLength {
		return nil, models.NewValidationError("Field `body` is too long. Max length is 10000")
	}
	userID, err := coerceUserID(raw.UserID)
	if err != nil {
		return nil, err
	}
	return &CommentPayload{Body: raw.Body, UserID: userID}, nil
}

func ValidateBan(raw models.CreateBanRequest) (*BanPayload, error) {
	userID, err := coerceUserID(raw.UserID)
	if err != nil {
		return nil, err
	}
	return &BanPayload{UserID: userID}, nil
}

// coerceUserID accepts the shapes a JSON decoder can hand us for `user_id`:
// a number, a numeric string, or a json.Number.
func coerceUserID(v interface{}) (uint, error) {
	if v == nil {
		return 0, models.NewValidationError("Field `user_id` is required")
	}

	var id int64
	switch value := v.(type) {
	case float64:
		id = int64(value)
		if float64(id) != value {
			return 0, models.NewValidationError("Bad field `user_id`")
		}
	case string:
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, models.NewValidationError("Bad field `user_id`")
		}
		id = parsed
	case json.Number:
		parsed, err := value.Int64()
		if err != nil {
			return 0, models.NewValidationError("Bad field `user_id`")
		}
		id = parsed
	default:
		return 0, models.NewValidationError("Bad field `user_id`")
	}

	if id <= 0 {
		return 0, models.NewValidationError("Bad field `user_id`")
	}
	return uint(id), nil
}
