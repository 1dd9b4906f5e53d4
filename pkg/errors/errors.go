package errors

// Error message constants for the py-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToWriteFile = "failed to write file"

	// Directory processing errors
	ErrMsgFailedToCheckPath   = "failed to check path"
	ErrMsgFailedToFindPyFiles = "failed to find Python files in directory"

	// Configuration errors
	ErrMsgFailedToLoadConfig = "failed to load config"
	ErrMsgInvalidThreadCount = "invalid thread count: %d"

	// Info/warning messages
	InfoMsgNotAPythonFile = "Not a Python file or ignored: %s"
	InfoMsgNoPyFilesFound = "No Python files found in directory: %s"
	InfoMsgFoundPyFiles   = "Found %d Python files in directory: %s"
	InfoMsgProcessing     = "Processing: %s"
	InfoMsgUpdated        = "✓ Updated: %s"
	InfoMsgNoChanges      = "⚡ No changes needed: %s"
	InfoMsgModifiedFiles  = "\nModified files:"
	InfoMsgModifiedEntry  = "✓ %s"
	WarnMsgBackupFailed   = "Warning: failed to back up %s: %v"
)
