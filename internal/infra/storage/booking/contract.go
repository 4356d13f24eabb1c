package booking

import (
	"github.com/bettersystemsai/BSA-BookingService/pkg/dbmetrics"
)

// DBExecutor исполнитель запросов к БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
