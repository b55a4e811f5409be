package model

import "gorm.io/gorm"

// Comment 帖子评论，随帖子级联软删除
type Comment struct {
	gorm.Model
	Uuid       string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:评论唯一id"`
	PostUuid   string `gorm:"column:post_uuid;index;type:char(20);not null;comment:所属帖子id"`
	AuthorUuid string `gorm:"column:author_uuid;type:char(20);not null;comment:作者uuid"`
	Content    string `gorm:"column:content;type:varchar(1000);not null;comment:内容"`
}

func (Comment) TableName() string {
	return "comment"
}
