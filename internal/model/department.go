package model

import "gorm.io/gorm"

// Department 院系，属于某个机构
type Department struct {
	gorm.Model
	Uuid            string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:院系唯一id"`
	InstitutionUuid string `gorm:"column:institution_uuid;index;type:char(20);not null;comment:所属机构id"`
	Name            string `gorm:"column:name;type:varchar(100);not null;comment:院系名称"`
	Code            string `gorm:"column:code;type:varchar(20);comment:院系编号"`
	Description     string `gorm:"column:description;type:varchar(500);comment:院系简介"`
}

func (Department) TableName() string {
	return "department"
}
