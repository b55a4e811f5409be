package model

import "gorm.io/gorm"

// Friendship 好友关系（双向，单条记录）
// requester 发起申请，addressee 接受后 Status 变为 ACCEPTED
// (requester, addressee) 唯一，反向重复申请由业务层检查
type Friendship struct {
	gorm.Model
	RequesterUuid string `gorm:"type:char(20);uniqueIndex:idx_requester_addressee;index;not null;comment:申请方uuid"`
	AddresseeUuid string `gorm:"type:char(20);uniqueIndex:idx_requester_addressee;index;not null;comment:接收方uuid"`
	Status        int8   `gorm:"default:0;comment:0待确认 1已接受"`
}

func (Friendship) TableName() string {
	return "friendship"
}
