package service

// Status уточняет исход операции синхронизатора.
type Status int

const (
	// StatusOK — локальная мутация применена и подтверждена удалённым хранилищем.
	StatusOK Status = iota
	// StatusInvalid — черновик не прошёл валидацию; ни локальное, ни удалённое
	// состояние не изменились.
	StatusInvalid
	// StatusNotAuthenticated — владельца нет; локальная мутация (если была)
	// применена, обращение к хранилищу не выполнялось.
	StatusNotAuthenticated
	// StatusNotFound — запись с таким id не найдена; операция — no-op.
	StatusNotFound
	// StatusRemoteError — локальная мутация применена, удалённый вызов не
	// удался; ошибка только залогирована, отката нет.
	StatusRemoteError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalid:
		return "invalid"
	case StatusNotAuthenticated:
		return "not_authenticated"
	case StatusNotFound:
		return "not_found"
	case StatusRemoteError:
		return "remote_error"
	}
	return "unknown"
}

// Result — явный итог оптимистичной мутации: что случилось локально и
// дошла ли запись до хранилища. Локальное состояние никогда не
// откатывается по удалённой ошибке — расхождение живёт до следующего Load.
type Result struct {
	LocalApplied    bool
	RemoteConfirmed bool
	Status          Status
}

func resultOK() Result {
	return Result{LocalApplied: true, RemoteConfirmed: true, Status: StatusOK}
}

func resultInvalid() Result {
	return Result{Status: StatusInvalid}
}

func resultNotFound() Result {
	return Result{Status: StatusNotFound}
}
