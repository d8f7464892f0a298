package allocation

import (
	"github.com/a1exks/FCP-AllocationService/pkg/dbmetrics"
)

// Переиспользуем интерфейс executor'а из dbmetrics: репозиторий работает
// одинаково поверх *sql.DB, *sql.Tx и их инструментированных оберток.
type DBExecutor = dbmetrics.DBExecutor
