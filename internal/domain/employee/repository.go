package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no row matches
	GetByID(ctx context.Context, id int64) (Employee, error)

	// List returns every employee ordered by id, exception employees included
	List(ctx context.Context) ([]Employee, error)

	Exists(ctx context.Context, id int64) (bool, error)
}
