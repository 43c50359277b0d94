package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Course configuration errors
	CourseConfigError
	CourseValidationError

	// Input errors
	InputNotFoundError
	InputFormatError
	ScoreOutOfRangeError

	// Merge errors
	JoinKeyMismatchError
	EmptyJoinError
	DuplicateKeyError

	// Grade errors
	ZeroDenominatorError
	MissingColumnError
	ElapsedWeeksError

	// Table serialization errors
	UnsupportedFormatError
	ReadTableError
	WriteTableError

	// Generator errors
	GenerateParamsError
)
