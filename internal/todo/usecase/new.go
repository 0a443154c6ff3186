package usecase

import (
	"itodo/internal/todo"
	"itodo/internal/todo/repository"
	"itodo/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo repository.SessionRepository
	l    log.Logger
}

// New creates a new todo UseCase implementation.
func New(repo repository.SessionRepository, l log.Logger) todo.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
