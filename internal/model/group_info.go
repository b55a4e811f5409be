package model

import (
	"gorm.io/gorm"
)

// GroupInfo 群组信息
// slug 在同一机构内唯一；MembersCount/PostsCount 为冗余计数，
// 仅随 JOINED 状态变化（加入/通过/封禁/退出）及发帖/删帖变动
type GroupInfo struct {
	gorm.Model
	Uuid                string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:群组唯一id"`
	Name                string `gorm:"column:name;type:varchar(50);not null;comment:群名称"`
	Slug                string `gorm:"column:slug;type:varchar(80);not null;uniqueIndex:idx_inst_slug;comment:URL标识"`
	InstitutionUuid     string `gorm:"column:institution_uuid;type:char(20);not null;uniqueIndex:idx_inst_slug;index;comment:所属机构id"`
	Description         string `gorm:"column:description;type:varchar(500);comment:群简介"`
	Avatar              string `gorm:"column:avatar;type:char(255);default:/static/avatars/group_default.png;not null;comment:头像"`
	OwnerId             string `gorm:"column:owner_id;type:char(20);not null;comment:群主uuid"`
	Privacy             int8   `gorm:"column:privacy;default:0;comment:隐私级别，0.公开，1.私密，2.封闭"`
	Type                int8   `gorm:"column:type;default:0;comment:类型，0.普通，1.官方，2.招聘"`
	AllowMemberPosting  bool   `gorm:"column:allow_member_posting;default:true;comment:是否允许普通成员发帖"`
	RequirePostApproval bool   `gorm:"column:require_post_approval;default:false;comment:成员发帖是否需要审核"`
	MembersCount        int    `gorm:"column:members_count;default:1;comment:成员数"`
	PostsCount          int    `gorm:"column:posts_count;default:0;comment:帖子数"`
}

func (GroupInfo) TableName() string {
	return "group_info"
}
