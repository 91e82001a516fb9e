package payment

import "github.com/m04kA/BeachClub-ReservationService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
