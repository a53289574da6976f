package services

import (
	"sort"
	"strings"

	"blog-api/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. Constraint violations surface as the same
// translated gorm errors the postgres driver produces.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) add(username string) *models.User {
	user := &models.User{Username: username}
	f.Create(user)
	return user
}

type fakeTagRepo struct {
	tags   map[string]*models.Tag
	nextID uint

	// raceOnCreate simulates a concurrent creator winning between the
	// caller's read and insert: Create stores the winner's row and reports
	// a duplicate.
	raceOnCreate bool
	createCalls  int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*models.Tag), nextID: 1}
}

func (f *fakeTagRepo) Create(tag *models.Tag) error {
	f.createCalls++
	if _, ok := f.tags[tag.Name]; ok {
		return gorm.ErrDuplicatedKey
	}
	if f.raceOnCreate {
		f.tags[tag.Name] = &models.Tag{ID: f.nextID, Name: tag.Name}
		f.nextID++
		return gorm.ErrDuplicatedKey
	}
	tag.ID = f.nextID
	f.nextID++
	f.tags[tag.Name] = tag
	return nil
}

func (f *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	tag, ok := f.tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tag, nil
}

type fakePostRepo struct {
	posts        map[uint]*models.Post
	nextID       uint
	searchCalled bool
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint]*models.Post), nextID: 1}
}

func (f *fakePostRepo) Create(post *models.Post) error {
	post.ID = f.nextID
	f.nextID++
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(id uint) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return post, nil
}

func (f *fakePostRepo) GetByUser(userID uint, sortArg string) ([]models.Post, error) {
	var posts []models.Post
	for _, post := range f.posts {
		if post.UserID == userID {
			posts = append(posts, *post)
		}
	}
	switch sortArg {
	case "pub_date":
		sort.Slice(posts, func(i, j int) bool { return posts[i].PubDate.Before(posts[j].PubDate) })
	case "-pub_date":
		sort.Slice(posts, func(i, j int) bool { return posts[j].PubDate.Before(posts[i].PubDate) })
	}
	return posts, nil
}

func (f *fakePostRepo) Search(filter models.SearchFilter) ([]models.SearchResult, error) {
	f.searchCalled = true
	var results []models.SearchResult
	for _, post := range f.posts {
		if len(filter.Tags) > 0 && !hasAnyTag(post, filter.Tags) {
			continue
		}
		if filter.Title != "" && !strings.Contains(post.Title, filter.Title) {
			continue
		}
		if filter.DateBegin != nil && post.PubDate.Before(*filter.DateBegin) {
			continue
		}
		if filter.DateEnd != nil && post.PubDate.After(*filter.DateEnd) {
			continue
		}
		results = append(results, models.SearchResult{
			ID:      post.ID,
			Title:   post.Title,
			Body:    post.Body,
			PubDate: post.PubDate,
		})
	}
	return results, nil
}

func hasAnyTag(post *models.Post, names []string) bool {
	for _, tag := range post.Tags {
		for _, name := range names {
			if tag.Name == name {
				return true
			}
		}
	}
	return false
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint]*models.Comment), nextID: 1}
}

func (f *fakeCommentRepo) Create(comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetByPost(postID uint, sortArg string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range f.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	switch sortArg {
	case "pub_date":
		sort.Slice(comments, func(i, j int) bool { return comments[i].PubDate.Before(comments[j].PubDate) })
	case "-pub_date":
		sort.Slice(comments, func(i, j int) bool { return comments[j].PubDate.Before(comments[i].PubDate) })
	}
	return comments, nil
}

type fakeBanRepo struct {
	bans   map[uint]*models.Ban
	nextID uint

	// vanishBeforeDelete simulates another request removing the ban between
	// the existence check and the delete.
	vanishBeforeDelete bool
}

func newFakeBanRepo() *fakeBanRepo {
	return &fakeBanRepo{bans: make(map[uint]*models.Ban), nextID: 1}
}

func (f *fakeBanRepo) Create(ban *models.Ban) error {
	for _, existing := range f.bans {
		if existing.PostID == ban.PostID && existing.UserID == ban.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	ban.ID = f.nextID
	f.nextID++
	f.bans[ban.ID] = ban
	return nil
}

func (f *fakeBanRepo) GetByID(id uint) (*models.Ban, error) {
	ban, ok := f.bans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ban, nil
}

func (f *fakeBanRepo) GetByPostAndUser(postID, userID uint) (*models.Ban, error) {
	for _, ban := range f.bans {
		if ban.PostID == postID && ban.UserID == userID {
			return ban, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBanRepo) Delete(id uint) (int64, error) {
	if f.vanishBeforeDelete {
		delete(f.bans, id)
		f.vanishBeforeDelete = false
	}
	if _, ok := f.bans[id]; !ok {
		return 0, nil
	}
	delete(f.bans, id)
	return 1, nil
}
