package model

import "gorm.io/gorm"

// Post 群组帖子
// 永不物理删除：删除走软删除，群组删除时级联软删除
// IsApproved 为 false 时仅作者与协管员以上可见（群组开启发帖审核时生效）
type Post struct {
	gorm.Model
	Uuid          string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:帖子唯一id"`
	GroupUuid     string `gorm:"column:group_uuid;index;type:char(20);not null;comment:所属群组id"`
	AuthorUuid    string `gorm:"column:author_uuid;index;type:char(20);not null;comment:作者uuid"`
	Content       string `gorm:"column:content;type:text;not null;comment:正文"`
	Visibility    int8   `gorm:"column:visibility;default:0;comment:可见性，0.公开，1.好友可见，2.仅自己"`
	Type          int8   `gorm:"column:type;default:0;comment:类型，0.普通，1.交易"`
	IsPinned      bool   `gorm:"column:is_pinned;default:false;comment:是否置顶"`
	IsApproved    bool   `gorm:"column:is_approved;default:true;comment:是否已审核通过"`
	IsArchived    bool   `gorm:"column:is_archived;default:false;comment:是否归档"`
	LikesCount    int    `gorm:"column:likes_count;default:0;comment:点赞数"`
	CommentsCount int    `gorm:"column:comments_count;default:0;comment:评论数"`
}

func (Post) TableName() string {
	return "post"
}
