package repositories

import "context"

type HealthRepository interface {
	Liveness(ctx context.Context, exec Executor) error
}

type HealthRepositoryPostgresql struct{}

func (repo HealthRepositoryPostgresql) Liveness(ctx context.Context, exec Executor) error {
	row := exec.QueryRow(ctx, "SELECT 1")
	var result int
	return row.Scan(&result)
}
