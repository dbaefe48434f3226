package usecases

import (
	"sort"
	"strings"
	"time"

	"kanban-server/apperrors"
	"kanban-server/entities"
	"kanban-server/services"
)

// In-memory repository and service fakes shared by the use-case tests.

type fakeUserRepo struct {
	users  map[uint]*entities.User
	nextID uint
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*entities.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll() ([]entities.User, error) {
	out := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *entities.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) EmailExists(email string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

type fakeTaskRepo struct {
	tasks  map[uint]*entities.Task
	nextID uint
	err    error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*entities.Task), nextID: 1}
}

func (r *fakeTaskRepo) Create(task *entities.Task) error {
	if r.err != nil {
		return r.err
	}
	task.ID = r.nextID
	r.nextID++
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(id uint) (*entities.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	if t, ok := r.tasks[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, apperrors.ErrTaskNotFound
}

func (r *fakeTaskRepo) Update(task *entities.Task) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.tasks[task.ID]; !ok {
		return apperrors.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) byUser(userID uint) []entities.Task {
	out := []entities.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out
}

func sortByOrderThenCreated(tasks []entities.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].SortOrder != tasks[j].SortOrder {
			return tasks[i].SortOrder < tasks[j].SortOrder
		}
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}

func (r *fakeTaskRepo) ListByUser(userID uint) ([]entities.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	tasks := r.byUser(userID)
	sortByOrderThenCreated(tasks)
	return tasks, nil
}

func (r *fakeTaskRepo) ListByUserAndStatus(userID uint, status entities.TaskStatus) ([]entities.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := r.byUser(userID)
	tasks := []entities.Task{}
	for _, t := range all {
		if t.Status == status {
			tasks = append(tasks, t)
		}
	}
	sortByOrderThenCreated(tasks)
	return tasks, nil
}

func (r *fakeTaskRepo) ListWithFilter(userID uint, term string) ([]entities.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := r.byUser(userID)
	tasks := []entities.Task{}
	for _, t := range all {
		if term == "" || strings.Contains(t.Title, term) || strings.Contains(t.Description, term) {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Status != tasks[j].Status {
			return tasks[i].Status < tasks[j].Status
		}
		if tasks[i].SortOrder != tasks[j].SortOrder {
			return tasks[i].SortOrder < tasks[j].SortOrder
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *fakeTaskRepo) Exists(id uint) (bool, error) {
	_, ok := r.tasks[id]
	return ok, nil
}

func (r *fakeTaskRepo) UserOwnsTask(userID, taskID uint) (bool, error) {
	t, ok := r.tasks[taskID]
	return ok && t.UserID == userID, nil
}

// fakeHasher marks hashes deterministically so tests stay fast; salting
// behaviour is covered by the bcrypt tests in services.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Verify(plaintext, hash string) bool {
	return hash == "hashed:"+plaintext
}

type fakeTokens struct {
	token string
}

func (f fakeTokens) Generate(user *entities.User) (string, error) {
	return f.token, nil
}

func (f fakeTokens) Parse(tokenString string) (*services.TokenClaims, error) {
	return nil, services.ErrInvalidToken
}

func (f fakeTokens) ExpiresIn() time.Duration { return time.Hour }
