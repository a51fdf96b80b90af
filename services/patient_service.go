package services

import (
	"context"
	"strings"

	"medimeal/models"
)

type PatientService struct {
	patients PatientStore
}

func NewPatientService(patients PatientStore) *PatientService {
	return &PatientService{patients: patients}
}

type PatientInput struct {
	Name             string   `json:"name" binding:"required"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	RoomNumber       string   `json:"room_number" binding:"required"`
	BedNumber        string   `json:"bed_number"`
	FloorNumber      string   `json:"floor_number"`
	Diseases         []string `json:"diseases"`
	Allergies        []string `json:"allergies"`
	ContactNumber    string   `json:"contact_number"`
	EmergencyContact string   `json:"emergency_contact"`
}

func (s *PatientService) Create(ctx context.Context, in PatientInput) (*models.Patient, error) {
	patient := &models.Patient{
		Name:             in.Name,
		Age:              in.Age,
		Gender:           in.Gender,
		RoomNumber:       in.RoomNumber,
		BedNumber:        in.BedNumber,
		FloorNumber:      in.FloorNumber,
		Diseases:         joinList(in.Diseases),
		Allergies:        joinList(in.Allergies),
		ContactNumber:    in.ContactNumber,
		EmergencyContact: in.EmergencyContact,
		Active:           true,
	}
	if err := s.patients.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Get returns the patient by id even when soft-deleted; only the list view
// filters on the active flag.
func (s *PatientService) Get(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.patients.FindPatientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	return patient, nil
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.patients.ListPatients(ctx, true)
}

func (s *PatientService) Update(ctx context.Context, id uint, in PatientInput) (*models.Patient, error) {
	patient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patient.Name = in.Name
	patient.Age = in.Age
	patient.Gender = in.Gender
	patient.RoomNumber = in.RoomNumber
	patient.BedNumber = in.BedNumber
	patient.FloorNumber = in.FloorNumber
	patient.Diseases = joinList(in.Diseases)
	patient.Allergies = joinList(in.Allergies)
	patient.ContactNumber = in.ContactNumber
	patient.EmergencyContact = in.EmergencyContact
	if err := s.patients.SavePatient(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Delete is a soft delete: the record stays, direct lookups still find it,
// list queries exclude it.
func (s *PatientService) Delete(ctx context.Context, id uint) error {
	patient, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	patient.Active = false
	return s.patients.SavePatient(ctx, patient)
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}
