package state

// Result is the outcome handed back to the view layer. Err is a user-facing
// message; adapter failures never propagate past the store as errors.
type Result struct {
	Success bool
	Err     string
}

func success() Result {
	return Result{Success: true}
}

func failure(err error) Result {
	return Result{Success: false, Err: err.Error()}
}
