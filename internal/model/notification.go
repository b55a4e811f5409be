package model

import "gorm.io/gorm"

// Notification 通知记录
// 由活动事件（入群、点赞、好友申请等）落库产生，Uuid 为雪花 ID 字符串
type Notification struct {
	gorm.Model
	Uuid          string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:通知唯一id"`
	RecipientUuid string `gorm:"column:recipient_uuid;index;type:char(20);not null;comment:接收者uuid"`
	ActorUuid     string `gorm:"column:actor_uuid;type:char(20);comment:触发者uuid"`
	Type          int8   `gorm:"column:type;not null;comment:通知类型"`
	RefUuid       string `gorm:"column:ref_uuid;type:char(20);comment:关联对象id（群/帖子/用户）"`
	Content       string `gorm:"column:content;type:varchar(300);comment:通知文案"`
	IsRead        bool   `gorm:"column:is_read;default:false;comment:是否已读"`
}

func (Notification) TableName() string {
	return "notification"
}
