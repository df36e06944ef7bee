package executor_factory

import (
	"context"

	"github.com/IliyanIlievPH/partner-management/repositories"

	"github.com/pashagolub/pgxmock/v4"
)

// ExecutorFactoryStub hands out pgxmock-backed executors for usecase tests.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

func (stub ExecutorFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Executor) error,
) error {
	return fn(stub.NewExecutor())
}
