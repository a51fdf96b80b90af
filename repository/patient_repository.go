package repository

import (
	"context"
	"errors"

	"medimeal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	DB *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{DB: db}
}

func (r *PatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	return r.DB.WithContext(ctx).Create(patient).Error
}

func (r *PatientRepository) FindPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.DB.WithContext(ctx).First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) ListPatients(ctx context.Context, activeOnly bool) ([]models.Patient, error) {
	q := r.DB.WithContext(ctx).Model(&models.Patient{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var patients []models.Patient
	if err := q.Order("created_at DESC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) SavePatient(ctx context.Context, patient *models.Patient) error {
	return r.DB.WithContext(ctx).Save(patient).Error
}
