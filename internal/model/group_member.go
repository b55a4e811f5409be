package model

import "gorm.io/gorm"

// GroupMember 群成员关联表
// (group_uuid, user_uuid) 唯一：一个用户在一个群中最多一条记录，
// 状态编码当前关系（JOINED/PENDING/INVITED/BANNED），并发重复加群由唯一索引拒绝
type GroupMember struct {
	gorm.Model
	GroupUuid string `gorm:"type:char(20);uniqueIndex:idx_group_user;index;not null;comment:群组ID"`
	UserUuid  string `gorm:"type:char(20);uniqueIndex:idx_group_user;index;not null;comment:用户ID"`
	Role      int8   `gorm:"default:1;comment:1普通成员 2协管员 3管理员 4群主"`
	Status    int8   `gorm:"default:0;comment:0已加入 1待审核 2已邀请 3已封禁"`
	InvitedBy string `gorm:"type:char(20);comment:邀请人uuid（邀请产生的记录）"`
}

func (GroupMember) TableName() string {
	return "group_member"
}
