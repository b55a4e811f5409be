package model

import "gorm.io/gorm"

// Institution 机构（学校）
type Institution struct {
	gorm.Model
	Uuid        string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:机构唯一id"`
	Name        string `gorm:"column:name;type:varchar(100);not null;comment:机构名称"`
	Slug        string `gorm:"column:slug;uniqueIndex;type:varchar(80);not null;comment:URL标识"`
	Description string `gorm:"column:description;type:varchar(500);comment:机构简介"`
	City        string `gorm:"column:city;type:varchar(50);comment:所在城市"`
	Website     string `gorm:"column:website;type:varchar(200);comment:官网地址"`
}

func (Institution) TableName() string {
	return "institution"
}
