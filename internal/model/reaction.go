package model

import "gorm.io/gorm"

// Reaction 帖子点赞记录，(post_uuid, user_uuid) 唯一
type Reaction struct {
	gorm.Model
	PostUuid string `gorm:"type:char(20);uniqueIndex:idx_react_post_user;index;not null;comment:帖子ID"`
	UserUuid string `gorm:"type:char(20);uniqueIndex:idx_react_post_user;not null;comment:用户ID"`
}

func (Reaction) TableName() string {
	return "post_reaction"
}
