package model

import "gorm.io/gorm"

// Room 教室，属于某个院系
type Room struct {
	gorm.Model
	Uuid           string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:教室唯一id"`
	DepartmentUuid string `gorm:"column:department_uuid;index;type:char(20);not null;comment:所属院系id"`
	Name           string `gorm:"column:name;type:varchar(50);not null;comment:教室名称"`
	Building       string `gorm:"column:building;type:varchar(50);comment:所在楼栋"`
	Capacity       int    `gorm:"column:capacity;default:0;comment:容量"`
}

func (Room) TableName() string {
	return "room"
}
