package app

import (
	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/repository"
)

// MustInitTaskRepository creates the single task repository of
// the process. Its contents are lost when the process exits.
func MustInitTaskRepository() repository.TaskRepository {
	cfg := config.Global().Storage

	var opts []repository.Option
	if cfg.SeedSampleTasks {
		opts = append(opts, repository.WithTasks(repository.SampleTasks()...))
	}

	tasks, err := repository.NewTaskRepository(globalLogger, opts...)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to init task repository")
		panic(err)
	}
	globalLogger.Info().
		Bool("seeded", cfg.SeedSampleTasks).
		Msg("initialized task repository")

	return tasks
}
