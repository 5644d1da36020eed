package post

import (
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]Post, error) {
	var posts []Post
	err := r.DB.Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *Repository) GetByID(id uint) (*Post, error) {
	var p Post
	err := r.DB.Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Exists reports whether the post exists. Used by the comment service
// before accepting a new comment.
func (r *Repository) Exists(id uint) (bool, error) {
	var p Post
	err := r.DB.Select("id").Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) UpdateViewCount(id uint, count int) error {
	return r.DB.Model(&Post{}).Where("id = ?", id).
		UpdateColumn("view_count", count).Error
}

func (r *Repository) CommentCount(id uint) (int, error) {
	var p Post
	err := r.DB.Select("comment_count").Where("id = ?", id).First(&p).Error
	if err != nil {
		return 0, err
	}
	return p.CommentCount, nil
}

func (r *Repository) SetCommentCount(id uint, count int) error {
	return r.DB.Model(&Post{}).Where("id = ?", id).
		UpdateColumn("comment_count", count).Error
}
