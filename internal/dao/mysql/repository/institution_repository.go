// Package repository 提供数据访问层的具体实现
// 本文件实现 InstitutionRepository 接口
package repository

import (
	"campus_hub_server/internal/model"

	"gorm.io/gorm"
)

type institutionRepository struct {
	db *gorm.DB
}

// NewInstitutionRepository 创建 InstitutionRepository 实例
func NewInstitutionRepository(db *gorm.DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

func (r *institutionRepository) FindByUuid(uuid string) (*model.Institution, error) {
	var inst model.Institution
	if err := r.db.First(&inst, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询机构 uuid=%s", uuid)
	}
	return &inst, nil
}

func (r *institutionRepository) FindBySlug(slug string) (*model.Institution, error) {
	var inst model.Institution
	if err := r.db.First(&inst, "slug = ?", slug).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询机构 slug=%s", slug)
	}
	return &inst, nil
}

func (r *institutionRepository) Create(inst *model.Institution) error {
	if err := r.db.Create(inst).Error; err != nil {
		return wrapDBError(err, "创建机构")
	}
	return nil
}

func (r *institutionRepository) Update(inst *model.Institution) error {
	if err := r.db.Save(inst).Error; err != nil {
		return wrapDBError(err, "更新机构")
	}
	return nil
}

func (r *institutionRepository) GetList(page, pageSize int) ([]model.Institution, int64, error) {
	var insts []model.Institution
	var total int64

	offset, limit := normalizePage(page, pageSize)
	if err := r.db.Model(&model.Institution{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询机构总数")
	}
	if err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&insts).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询机构")
	}
	return insts, total, nil
}
