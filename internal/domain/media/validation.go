package media

// QuotaCheck is the advisory result of a per-entity quota probe. It is
// check-then-act, not a lock: two concurrent uploads can both pass and
// both insert. Hard enforcement belongs to the metadata store.
type QuotaCheck struct {
	Allowed      bool
	CurrentCount int
	MaxCount     int
	Message      string
}

type FileValidation struct {
	Index    int
	Filename string
	Errors   []ValidationError
}

func (v FileValidation) OK() bool { return len(v.Errors) == 0 }

// BatchValidation covers a whole candidate batch. When the batch would
// exceed quota every file is marked limit_exceeded, independent of its
// individual validity.
type BatchValidation struct {
	Files     []FileValidation
	CanUpload bool
	Message   string
}

type UploadFailure struct {
	Index    int
	Filename string
	Errors   []ValidationError
	Err      error
}

type BatchResult struct {
	Successful    Records
	Failed        []UploadFailure
	TotalUploaded int
	TotalFailed   int
}
