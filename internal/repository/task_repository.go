package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type Option func(*taskRepositoryImpl)

// WithClock replaces time.Now as the source of task timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *taskRepositoryImpl) {
		r.now = now
	}
}

// WithIDGenerator replaces the UUID v4 generator of task IDs.
func WithIDGenerator(newID func() string) Option {
	return func(r *taskRepositoryImpl) {
		r.newID = newID
	}
}

// WithTasks seeds the collection in the given order.
func WithTasks(tasks ...models.Task) Option {
	return func(r *taskRepositoryImpl) {
		r.seed = append(r.seed, tasks...)
	}
}

type taskRepositoryImpl struct {
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
	seed   []models.Task

	mu sync.RWMutex
	// tasks keeps insertion order, byID indexes the same pointers.
	tasks []*models.Task
	byID  map[string]*models.Task
}

func NewTaskRepository(logger zerolog.Logger, opts ...Option) (TaskRepository, error) {
	r := &taskRepositoryImpl{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
		byID:   make(map[string]*models.Task),
	}
	for _, opt := range opts {
		opt(r)
	}

	for i := range r.seed {
		err := r.insertSeed(r.seed[i])
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("task_id", r.seed[i].ID).
				Msg("failed to seed task")
			return nil, err
		}
	}
	r.seed = nil

	r.logger.Debug().
		Int("count", len(r.tasks)).
		Msg("initialized task repository")
	return r, nil
}

func (r *taskRepositoryImpl) insertSeed(task models.Task) error {
	if task.ID == "" {
		return fmt.Errorf("seed task has no id")
	}
	if _, exists := r.byID[task.ID]; exists {
		return fmt.Errorf("duplicate seed task id %q", task.ID)
	}

	task.Title = strings.TrimSpace(task.Title)
	task.Description = strings.TrimSpace(task.Description)
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	err := validateTask(task.Title, task.Description, task.Status)
	if err != nil {
		return fmt.Errorf("invalid seed task %q: %w", task.ID, err)
	}
	if task.UpdatedAt.Before(task.CreatedAt) {
		return fmt.Errorf("seed task %q was updated before it was created", task.ID)
	}

	r.append(&task)
	return nil
}

func (r *taskRepositoryImpl) append(task *models.Task) {
	r.tasks = append(r.tasks, task)
	r.byID[task.ID] = task
}

func (r *taskRepositoryImpl) loggerFrom(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &r.logger
	}
	return l
}

func (r *taskRepositoryImpl) List(ctx context.Context, params ListParams) ([]*models.Task, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(params.Search)
	filterStatus := params.Status.IsValid()

	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if filterStatus && task.Status != params.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(task.Title), search) &&
			!strings.Contains(strings.ToLower(task.Description), search) {
			continue
		}
		tasks = append(tasks, task.Clone())
	}

	// Newest first, insertion order among equal timestamps.
	slices.SortStableFunc(tasks, func(a, b *models.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	r.loggerFrom(ctx).Debug().
		Str("status", string(params.Status)).
		Bool("status_applied", filterStatus).
		Str("search", params.Search).
		Int("count", len(tasks)).
		Msg("listed tasks")
	return tasks, len(tasks)
}

func (r *taskRepositoryImpl) Get(ctx context.Context, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.byID[id]
	if !ok {
		r.loggerFrom(ctx).Info().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	return task.Clone(), nil
}

func (r *taskRepositoryImpl) Create(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	logger := r.loggerFrom(ctx)

	title := strings.TrimSpace(params.Title)
	description := strings.TrimSpace(params.Description)
	err := validateTask(title, description, params.Status)
	if err != nil {
		logger.Info().
			Err(err).
			Msg("invalid task")
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = models.StatusPending
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	if _, exists := r.byID[id]; exists {
		logger.Error().
			Str("task_id", id).
			Msg("generated duplicate task id")
		return nil, fmt.Errorf("generated duplicate task id %q", id)
	}

	now := r.now()
	task := &models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.append(task)

	logger.Debug().
		Str("task_id", task.ID).
		Str("status", string(task.Status)).
		Msg("inserted task")
	logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return task.Clone(), nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	logger := r.loggerFrom(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.byID[params.ID]
	if !ok {
		logger.Info().
			Str("task_id", params.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	title := strings.TrimSpace(params.Title)
	description := strings.TrimSpace(params.Description)
	err := validateTask(title, description, params.Status)
	if err != nil {
		logger.Info().
			Err(err).
			Str("task_id", params.ID).
			Msg("invalid task")
		return nil, err
	}

	task.Title = title
	task.Description = description
	if params.Status != "" {
		task.Status = params.Status
	}
	task.UpdatedAt = r.touch(task)

	logger.Debug().
		Str("task_id", task.ID).
		Str("status", string(task.Status)).
		Msg("updated task")
	logger.Info().
		Str("task_id", task.ID).
		Msg("updated task")
	return task.Clone(), nil
}

func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, params UpdateTaskStatusParams) (*models.Task, error) {
	logger := r.loggerFrom(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.byID[params.ID]
	if !ok {
		logger.Info().
			Str("task_id", params.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	err := validateTaskStatus(params.Status)
	if err != nil {
		logger.Info().
			Err(err).
			Str("task_id", params.ID).
			Str("status", string(params.Status)).
			Msg("invalid task status")
		return nil, err
	}

	task.Status = params.Status
	task.UpdatedAt = r.touch(task)

	logger.Debug().
		Str("task_id", task.ID).
		Str("status", string(task.Status)).
		Msg("updated task status")
	logger.Info().
		Str("task_id", task.ID).
		Msg("updated task status")
	return task.Clone(), nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) (*models.Task, error) {
	logger := r.loggerFrom(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.tasks, func(task *models.Task) bool {
		return task.ID == id
	})
	if i == -1 {
		logger.Info().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	task := r.tasks[i]
	r.tasks = slices.Delete(r.tasks, i, i+1)
	delete(r.byID, id)

	logger.Debug().
		Int("index", i).
		Str("task_id", id).
		Msg("removed task")
	logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return task.Clone(), nil
}

func (r *taskRepositoryImpl) Statuses() []models.Status {
	return models.Statuses()
}

func (r *taskRepositoryImpl) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tasks)
}

// touch returns the clock reading for a mutation of task,
// never earlier than its creation.
func (r *taskRepositoryImpl) touch(task *models.Task) time.Time {
	now := r.now()
	if now.Before(task.CreatedAt) {
		return task.CreatedAt
	}
	return now
}
