// Package repository 提供数据访问层的具体实现
// 本文件实现 RoomRepository 接口
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository 创建 RoomRepository 实例
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByUuid(uuid string) (*model.Room, error) {
	var room model.Room
	if err := r.db.First(&room, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询教室 uuid=%s", uuid)
	}
	return &room, nil
}

func (r *roomRepository) Create(room *model.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		return wrapDBError(err, "创建教室")
	}
	return nil
}

func (r *roomRepository) Update(room *model.Room) error {
	if err := r.db.Save(room).Error; err != nil {
		return wrapDBError(err, "更新教室")
	}
	return nil
}

func (r *roomRepository) GetListByDepartment(departmentUuid string, page, pageSize int) ([]model.Room, int64, error) {
	var rooms []model.Room
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Room{}).Where("department_uuid = ?", departmentUuid)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询教室总数")
	}
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&rooms).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询教室")
	}
	return rooms, total, nil
}
