package model

import "gorm.io/gorm"

// Follow 关注关系（单向），(follower, followee) 唯一
type Follow struct {
	gorm.Model
	FollowerUuid string `gorm:"type:char(20);uniqueIndex:idx_follower_followee;index;not null;comment:关注者uuid"`
	FolloweeUuid string `gorm:"type:char(20);uniqueIndex:idx_follower_followee;index;not null;comment:被关注者uuid"`
}

func (Follow) TableName() string {
	return "follow"
}
