package repositories

import (
	"testing"
	"time"

	"kanban-server/apperrors"
	"kanban-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskRepos(t *testing.T) (TaskRepository, *entities.User, *entities.User) {
	t.Helper()
	database := setupTestDB(t)
	users := NewUserPgRepository(database)
	ana := seedUser(t, users, "Ana", "ana@x.com")
	bob := seedUser(t, users, "Bob", "bob@x.com")
	return NewTaskPgRepository(database), ana, bob
}

func seedTask(t *testing.T, repo TaskRepository, userID uint, title string, status entities.TaskStatus, order int, createdAt time.Time) *entities.Task {
	t.Helper()
	task := &entities.Task{
		Title:     title,
		Status:    status,
		UserID:    userID,
		SortOrder: order,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(task))
	return task
}

func titles(tasks []entities.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestDeletingUserRemovesOwnedTasks(t *testing.T) {
	database := setupTestDB(t)
	users := NewUserPgRepository(database)
	tasks := NewTaskPgRepository(database)

	ana := seedUser(t, users, "Ana", "ana@x.com")
	bob := seedUser(t, users, "Bob", "bob@x.com")
	seedTask(t, tasks, ana.ID, "T1", entities.StatusToDo, 0, time.Now().UTC())
	seedTask(t, tasks, ana.ID, "T2", entities.StatusDone, 1, time.Now().UTC())
	kept := seedTask(t, tasks, bob.ID, "keep", entities.StatusToDo, 0, time.Now().UTC())

	require.NoError(t, users.Delete(ana.ID))

	orphans, err := tasks.ListByUser(ana.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Other owners' tasks are untouched.
	_, err = tasks.GetByID(kept.ID)
	assert.NoError(t, err)
}

func TestTaskCreateAndGet(t *testing.T) {
	repo, ana, _ := setupTaskRepos(t)

	created := seedTask(t, repo, ana.ID, "T1", entities.StatusToDo, 0, time.Now().UTC())
	require.NotZero(t, created.ID)

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T1", found.Title)
	assert.Equal(t, ana.ID, found.UserID)
}

func TestTaskGetByIDNotFound(t *testing.T) {
	repo, _, _ := setupTaskRepos(t)

	_, err := repo.GetByID(404)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskListByUserOrdersByOrderThenCreation(t *testing.T) {
	repo, ana, bob := setupTaskRepos(t)
	base := time.Now().UTC().Truncate(time.Second)

	seedTask(t, repo, ana.ID, "late low", entities.StatusDone, 1, base.Add(2*time.Hour))
	seedTask(t, repo, ana.ID, "early high", entities.StatusToDo, 5, base)
	seedTask(t, repo, ana.ID, "early low", entities.StatusInProgress, 1, base)
	seedTask(t, repo, bob.ID, "not mine", entities.StatusToDo, 0, base)

	tasks, err := repo.ListByUser(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"early low", "late low", "early high"}, titles(tasks))
}

func TestTaskListByUserAndStatus(t *testing.T) {
	repo, ana, _ := setupTaskRepos(t)
	base := time.Now().UTC().Truncate(time.Second)

	seedTask(t, repo, ana.ID, "doing b", entities.StatusInProgress, 2, base)
	seedTask(t, repo, ana.ID, "todo", entities.StatusToDo, 0, base)
	seedTask(t, repo, ana.ID, "doing a", entities.StatusInProgress, 1, base)

	tasks, err := repo.ListByUserAndStatus(ana.ID, entities.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, []string{"doing a", "doing b"}, titles(tasks))
}

// The filtered listing sorts by status first, unlike the plain listings.
func TestTaskListWithFilterOrdersByStatusFirst(t *testing.T) {
	repo, ana, _ := setupTaskRepos(t)
	base := time.Now().UTC().Truncate(time.Second)

	seedTask(t, repo, ana.ID, "report done", entities.StatusDone, 0, base)
	seedTask(t, repo, ana.ID, "report todo", entities.StatusToDo, 9, base)
	seedTask(t, repo, ana.ID, "report doing", entities.StatusInProgress, 0, base)
	seedTask(t, repo, ana.ID, "unrelated", entities.StatusToDo, 0, base)

	tasks, err := repo.ListWithFilter(ana.ID, "report")
	require.NoError(t, err)
	assert.Equal(t, []string{"report todo", "report doing", "report done"}, titles(tasks))
}

func TestTaskListWithFilterMatchesDescription(t *testing.T) {
	repo, ana, _ := setupTaskRepos(t)
	base := time.Now().UTC()

	task := &entities.Task{
		Title:       "T1",
		Description: "quarterly budget numbers",
		Status:      entities.StatusToDo,
		UserID:      ana.ID,
		CreatedAt:   base,
		UpdatedAt:   base,
	}
	require.NoError(t, repo.Create(task))
	seedTask(t, repo, ana.ID, "T2", entities.StatusToDo, 0, base)

	tasks, err := repo.ListWithFilter(ana.ID, "budget")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "T1", tasks[0].Title)
}

func TestTaskUpdate(t *testing.T) {
	repo, ana, _ := setupTaskRepos(t)
	task := seedTask(t, repo, ana.ID, "T1", entities.StatusToDo, 0, time.Now().UTC())

	task.Status = entities.StatusDone
	task.SortOrder = 4
	require.NoError(t, repo.Update(task))

	found, err := repo.GetByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDone, found.Status)
	assert.Equal(t, 4, found.SortOrder)
}

func TestTaskDelete(t *testing.T) {
	repo, ana, _ := setupTaskRepos(t)
	task := seedTask(t, repo, ana.ID, "T1", entities.StatusToDo, 0, time.Now().UTC())

	require.NoError(t, repo.Delete(task.ID))

	_, err := repo.GetByID(task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskExists(t *testing.T) {
	repo, ana, _ := setupTaskRepos(t)
	task := seedTask(t, repo, ana.ID, "T1", entities.StatusToDo, 0, time.Now().UTC())

	exists, err := repo.Exists(task.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(task.ID + 100)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTaskUserOwnsTask(t *testing.T) {
	repo, ana, bob := setupTaskRepos(t)
	task := seedTask(t, repo, ana.ID, "T1", entities.StatusToDo, 0, time.Now().UTC())

	owns, err := repo.UserOwnsTask(ana.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = repo.UserOwnsTask(bob.ID, task.ID)
	require.NoError(t, err)
	assert.False(t, owns)
}
