package main

import "github.com/adanyl0v/go-task-tracker/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadConfig()
	app.MustInitApplicationLogger()

	tasks := app.MustInitTaskRepository()
	app.MustListenAndServeHTTP(tasks)
}
