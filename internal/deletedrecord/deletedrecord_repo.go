package deletedrecord

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deletedrecord_repo.go -destination=mock/deletedrecord_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]DeletedRecord, error)
	FindByID(ctx context.Context, id int) (*DeletedRecord, error)
	// Restore inserts the record back into activerecords — reusing its old id
	// unless that id is now occupied, in which case the database assigns a
	// fresh auto-increment one — and removes it from deletedrecords only
	// after the insert succeeds.
	Restore(ctx context.Context, rec *DeletedRecord) error
	DeleteByID(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]DeletedRecord, error) {
	var records []DeletedRecord
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*DeletedRecord, error) {
	var rec DeletedRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Restore(ctx context.Context, rec *DeletedRecord) error {
	db := r.db.WithContext(ctx)

	var occupied int64
	if err := db.Table("activerecords").Where("id = ?", rec.ID).Count(&occupied).Error; err != nil {
		return err
	}

	row := map[string]any{
		"name":      rec.Name,
		"position":  rec.Position,
		"work_date": rec.WorkDate,
		"time_in":   rec.TimeIn,
		"time_out":  rec.TimeOut,
		"earnings":  rec.Earnings,
	}
	if occupied == 0 {
		row["id"] = rec.ID
	}
	if err := db.Table("activerecords").Create(row).Error; err != nil {
		return err
	}

	return db.Delete(&DeletedRecord{}, "id = ?", rec.ID).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&DeletedRecord{}, "id = ?", id).Error
}
