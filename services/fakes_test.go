package services

import (
	"context"
	"time"

	"medimeal/models"
)

// In-memory stand-ins for the repository layer, in the spirit of handler tests
// elsewhere: deterministic maps plus switches to force errors.

type fakeUserStore struct {
	users     map[uint]*models.User
	findErr   error
	createErr error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[uint]*models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = uint(len(s.users) + 1)
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) FindUserByID(_ context.Context, id uint) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.users[id], nil
}

func (s *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) ListStaff(_ context.Context, role models.Role, activeOnly bool) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		if role != "" && u.Role != role {
			continue
		}
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserStore) SaveUser(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

type fakeTaskStore struct {
	tasks         map[uint]*models.PantryTask
	nextID        uint
	forceConflict bool
	transitionErr error
}

func newFakeTaskStore(tasks ...*models.PantryTask) *fakeTaskStore {
	s := &fakeTaskStore{tasks: map[uint]*models.PantryTask{}}
	for _, task := range tasks {
		s.tasks[task.ID] = task
		if task.ID > s.nextID {
			s.nextID = task.ID
		}
	}
	return s
}

func (s *fakeTaskStore) FindTaskByID(_ context.Context, id uint) (*models.PantryTask, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *task
	return &cp, nil
}

func (s *fakeTaskStore) ListTasks(_ context.Context, f TaskFilter) ([]models.PantryTask, error) {
	var out []models.PantryTask
	for _, task := range s.tasks {
		if f.Status != "" && task.Status != f.Status {
			continue
		}
		if len(f.Statuses) > 0 {
			match := false
			for _, st := range f.Statuses {
				if task.Status == st {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		if f.AssignedToID != 0 && (task.AssignedToID == nil || *task.AssignedToID != f.AssignedToID) {
			continue
		}
		if f.DeliveryPersonID != 0 && (task.DeliveryPersonID == nil || *task.DeliveryPersonID != f.DeliveryPersonID) {
			continue
		}
		if f.PatientID != 0 && task.PatientID != f.PatientID {
			continue
		}
		if f.Unassigned && task.DeliveryPersonID != nil {
			continue
		}
		out = append(out, *task)
	}
	return out, nil
}

func (s *fakeTaskStore) TransitionTask(_ context.Context, id uint, from, to models.TaskStatus, set map[string]interface{}) (bool, error) {
	if s.transitionErr != nil {
		return false, s.transitionErr
	}
	task, ok := s.tasks[id]
	if !ok || task.Status != from || s.forceConflict {
		return false, nil
	}
	task.Status = to
	for k, v := range set {
		switch k {
		case "preparation_start_time":
			t := v.(time.Time)
			task.PreparationStartTime = &t
		case "preparation_end_time":
			t := v.(time.Time)
			task.PreparationEndTime = &t
		case "delivery_assigned_time":
			t := v.(time.Time)
			task.DeliveryAssignedTime = &t
		case "delivery_start_time":
			t := v.(time.Time)
			task.DeliveryStartTime = &t
		case "delivery_completion_time":
			t := v.(time.Time)
			task.DeliveryCompletionTime = &t
		case "assigned_to_id":
			id := v.(uint)
			task.AssignedToID = &id
		case "delivery_person_id":
			id := v.(uint)
			task.DeliveryPersonID = &id
		case "notes":
			task.Notes = v.(string)
		}
	}
	return true, nil
}

func (s *fakeTaskStore) SaveTask(_ context.Context, task *models.PantryTask) error {
	cp := *task
	s.tasks[task.ID] = &cp
	return nil
}

type fakePatientStore struct {
	patients  map[uint]*models.Patient
	nextID    uint
	createErr error
	saveErr   error
}

func newFakePatientStore(patients ...*models.Patient) *fakePatientStore {
	s := &fakePatientStore{patients: map[uint]*models.Patient{}}
	for _, p := range patients {
		s.patients[p.ID] = p
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	return s
}

func (s *fakePatientStore) CreatePatient(_ context.Context, patient *models.Patient) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	patient.ID = s.nextID
	cp := *patient
	s.patients[patient.ID] = &cp
	return nil
}

func (s *fakePatientStore) FindPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := s.patients[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakePatientStore) ListPatients(_ context.Context, activeOnly bool) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range s.patients {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakePatientStore) SavePatient(_ context.Context, patient *models.Patient) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *patient
	s.patients[patient.ID] = &cp
	return nil
}

type fakeChartStore struct {
	charts   map[uint]*models.DietChart
	tasks    []models.PantryTask
	nextID   uint
	taskErr  error // returned from inside the fan-out transaction
	chartErr error
}

func newFakeChartStore() *fakeChartStore {
	return &fakeChartStore{charts: map[uint]*models.DietChart{}}
}

func (s *fakeChartStore) CreateChartWithTasks(_ context.Context, chart *models.DietChart, buildTasks func(*models.DietChart) []models.PantryTask) error {
	if s.chartErr != nil {
		return s.chartErr
	}
	s.nextID++
	chart.ID = s.nextID
	for i := range chart.Meals {
		chart.Meals[i].ID = s.nextID*100 + uint(i) + 1
		chart.Meals[i].DietChartID = chart.ID
	}
	// transactional: a task failure rolls the chart back too
	if s.taskErr != nil {
		return s.taskErr
	}
	cp := *chart
	s.charts[chart.ID] = &cp
	s.tasks = append(s.tasks, buildTasks(chart)...)
	return nil
}

func (s *fakeChartStore) FindChartByID(_ context.Context, id uint) (*models.DietChart, error) {
	chart, ok := s.charts[id]
	if !ok {
		return nil, nil
	}
	cp := *chart
	return &cp, nil
}

func (s *fakeChartStore) ListCharts(_ context.Context, patientID uint, status models.ChartStatus) ([]models.DietChart, error) {
	var out []models.DietChart
	for _, chart := range s.charts {
		if patientID != 0 && chart.PatientID != patientID {
			continue
		}
		if status != "" && chart.Status != status {
			continue
		}
		out = append(out, *chart)
	}
	return out, nil
}

func (s *fakeChartStore) SaveChart(_ context.Context, chart *models.DietChart) error {
	cp := *chart
	s.charts[chart.ID] = &cp
	return nil
}

func (s *fakeChartStore) FindMeal(_ context.Context, chartID, mealID uint) (*models.Meal, error) {
	chart, ok := s.charts[chartID]
	if !ok {
		return nil, nil
	}
	for _, meal := range chart.Meals {
		if meal.ID == mealID {
			cp := meal
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeChartStore) SaveMeal(_ context.Context, meal *models.Meal) error {
	chart, ok := s.charts[meal.DietChartID]
	if !ok {
		return nil
	}
	for i := range chart.Meals {
		if chart.Meals[i].ID == meal.ID {
			chart.Meals[i] = *meal
		}
	}
	return nil
}
