package exitcode

import "fmt"

const (
	Errored = 1
	// Bad flags or arguments
	Usage = 2
	// Config could not be loaded or failed validation
	Config = 3
	// Database unreachable or a migration failed
	Database = 4
)

// Carries an exit code along with an error so the app can exit correctly
type ExitError struct {
	Err  error
	Code int
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%d", e.Code)
	}

	return fmt.Sprintf("%d: %s", e.Code, e.Err.Error())
}

func (e ExitError) Unwrap() error {
	return e.Err
}

// Wrap an error with an exit code
func Wrap(code int, err error) error {
	return ExitError{Code: code, Err: err}
}
