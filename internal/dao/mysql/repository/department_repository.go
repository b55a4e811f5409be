// Package repository 提供数据访问层的具体实现
// 本文件实现 DepartmentRepository 接口
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository 创建 DepartmentRepository 实例
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) FindByUuid(uuid string) (*model.Department, error) {
	var dept model.Department
	if err := r.db.First(&dept, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询院系 uuid=%s", uuid)
	}
	return &dept, nil
}

func (r *departmentRepository) Create(dept *model.Department) error {
	if err := r.db.Create(dept).Error; err != nil {
		return wrapDBError(err, "创建院系")
	}
	return nil
}

func (r *departmentRepository) Update(dept *model.Department) error {
	if err := r.db.Save(dept).Error; err != nil {
		return wrapDBError(err, "更新院系")
	}
	return nil
}

func (r *departmentRepository) GetListByInstitution(institutionUuid string, page, pageSize int) ([]model.Department, int64, error) {
	var depts []model.Department
	var total int64

	offset, limit := normalizePage(page, pageSize)
	query := r.db.Model(&model.Department{}).Where("institution_uuid = ?", institutionUuid)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询院系总数")
	}
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&depts).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询院系")
	}
	return depts, total, nil
}
