package model

import "gorm.io/gorm"

// SavedPost 帖子收藏记录，(post_uuid, user_uuid) 唯一
type SavedPost struct {
	gorm.Model
	PostUuid string `gorm:"type:char(20);uniqueIndex:idx_saved_post_user;index;not null;comment:帖子ID"`
	UserUuid string `gorm:"type:char(20);uniqueIndex:idx_saved_post_user;index;not null;comment:用户ID"`
}

func (SavedPost) TableName() string {
	return "post_saved"
}
