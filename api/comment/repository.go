package comment

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListByPost(postID uint) ([]Comment, error) {
	var comments []Comment
	err := r.DB.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *Repository) GetByIDAndPost(id, postID uint) (*Comment, error) {
	var c Comment
	err := r.DB.Where("id = ? AND post_id = ?", id, postID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(c *Comment) error {
	return r.DB.Create(c).Error
}

// ChildIDs returns the ids of the direct children of the given comments.
func (r *Repository) ChildIDs(parentIDs []uint) ([]uint, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.DB.Model(&Comment{}).Where("parent_id IN ?", parentIDs).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repository) DeleteByIDAndPost(id, postID uint) error {
	return r.DB.Where("id = ? AND post_id = ?", id, postID).Delete(&Comment{}).Error
}
