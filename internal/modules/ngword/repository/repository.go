package repository

// Source loads the NG-word list once per run
type Source interface {
	Load() ([]string, error)
}
