package model

import "gorm.io/gorm"

// ReadPost 帖子已读标记，(post_uuid, user_uuid) 唯一
type ReadPost struct {
	gorm.Model
	PostUuid string `gorm:"type:char(20);uniqueIndex:idx_read_post_user;index;not null;comment:帖子ID"`
	UserUuid string `gorm:"type:char(20);uniqueIndex:idx_read_post_user;not null;comment:用户ID"`
}

func (ReadPost) TableName() string {
	return "post_read"
}
