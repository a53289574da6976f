package models

import "time"

// Raw request bodies. Fields that need type coercion or list checks are kept
// loosely typed; the validation package turns them into cleaned payloads.

type CreateUserRequest struct {
	Username string `json:"username"`
}

type CreatePostRequest struct {
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Tags  interface{} `json:"tags"`
}

type CreateCommentRequest struct {
	Body   string      `json:"body"`
	UserID interface{} `json:"user_id"`
}

type CreateBanRequest struct {
	UserID interface{} `json:"user_id"`
}

// SearchParams carries the raw /v1/search query string values.
type SearchParams struct {
	Tags      string `form:"tags"`
	Title     string `form:"title"`
	DateBegin string `form:"date_begin"`
	DateEnd   string `form:"date_end"`
}

// SearchFilter is the validated filter handed to the post repository.
type SearchFilter struct {
	Tags      []string
	Title     string
	DateBegin *time.Time
	DateEnd   *time.Time
}

func (f SearchFilter) Empty() bool {
	return len(f.Tags) == 0 && f.Title == "" && f.DateBegin == nil && f.DateEnd == nil
}

// Response shapes.

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type PostCreatedResponse struct {
	ID      uint      `json:"id"`
	PubDate time.Time `json:"pub_date"`
	Title   string    `json:"title"`
	Tags    []string  `json:"tags"`
}

type PostResponse struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	PubDate time.Time `json:"pub_date"`
	Tags    []string  `json:"tags"`
}

type CommentCreatedResponse struct {
	ID      uint      `json:"id"`
	PubDate time.Time `json:"pub_date"`
}

type CommentResponse struct {
	ID      uint      `json:"id"`
	Body    string    `json:"body"`
	PubDate time.Time `json:"pub_date"`
}

type BanResponse struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
	PostID uint `json:"post_id"`
}

// SearchResult rows come straight from the search query. Tag names are
// deliberately not part of the result, unlike the per-user post listing.
type SearchResult struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	PubDate time.Time `json:"pub_date"`
}
